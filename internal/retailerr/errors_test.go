package retailerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"invalid argument", ErrInvalidArgument, CodeInvalidArgument},
		{"wrapped not found", fmt.Errorf("%w: id 9", ErrProductNotFound), CodeProductNotFound},
		{"wrapped stock", fmt.Errorf("%w: current stock 10", ErrInsufficientStock), CodeInsufficientStock},
		{"duplicate store", ErrDuplicateStoreID, CodeDuplicateStoreID},
		{"empty chain", ErrEmptyChain, CodeEmptyChain},
		{"foreign error", errors.New("boom"), CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Code(tt.err))
		})
	}
}

func TestIsRecoverable(t *testing.T) {
	assert.True(t, IsRecoverable(fmt.Errorf("%w: id -1", ErrInvalidArgument)))
	assert.True(t, IsRecoverable(ErrEmptyChain))
	assert.False(t, IsRecoverable(errors.New("boom")))
	assert.False(t, IsRecoverable(nil))
}
