package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/safar/retail-chain/internal/chain"
	"github.com/safar/retail-chain/internal/models"
	"github.com/safar/retail-chain/internal/retailerr"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const menu = `Choose an option:
 1) Top 5 products of the chain
 2) Store with the highest revenue
 3) Open stores
 4) Chain total revenue
 5) Quantity sold of a product at a store
 6) Revenue of a product at a store
 7) Total revenue of a store

 0) Exit
`

var errEndOfInput = errors.New("end of input")

// Shell is the interactive text menu over a chain.
type Shell struct {
	chain *chain.Chain
	in    *bufio.Scanner
	out   io.Writer
	log   *zap.Logger
	title cases.Caser
}

func New(c *chain.Chain, in io.Reader, out io.Writer, logger *zap.Logger) *Shell {
	if logger == nil {
		logger = zap.NewNop()
	}

	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	return &Shell{
		chain: c,
		in:    scanner,
		out:   out,
		log:   logger,
		title: cases.Title(language.Und),
	}
}

// Run shows the menu until the user picks 0 or the input ends.
func (s *Shell) Run() error {
	s.println("Welcome!")

	for {
		s.println(menu)
		s.print("Enter an option: ")

		token, err := s.next()
		if err != nil {
			return s.finish(err)
		}

		option, err := strconv.Atoi(token)
		if err != nil || option < 0 || option > 7 {
			s.println("Please enter a valid option")
			continue
		}
		if option == 0 {
			return nil
		}

		if err := s.dispatch(option); err != nil {
			return s.finish(err)
		}
	}
}

func (s *Shell) dispatch(option int) error {
	s.log.Debug("Menu option selected", zap.Int("option", option))

	switch option {
	case 1:
		s.println(s.chain.TopProductsByQuantity())

	case 2:
		top, err := s.chain.TopStoreByRevenue()
		if err != nil {
			s.report(err)
			return nil
		}
		s.println(top)

	case 3:
		s.println("Enter the time in H:mm format")
		raw, err := s.next()
		if err != nil {
			return err
		}
		at, err := models.ParseClock(raw)
		if err != nil {
			s.println(fmt.Sprintf("Invalid time %q", raw))
			return nil
		}

		s.print("Enter the day: ")
		day, err := s.next()
		if err != nil {
			return err
		}
		s.println(s.chain.OpenStores(at, s.title.String(day)))

	case 4:
		total, err := s.chain.TotalRevenue()
		if err != nil {
			s.report(err)
		}
		s.println("Total revenue: " + chain.FormatAmount(total))

	case 5:
		storeID, productID, err := s.readStoreAndProduct()
		if err != nil {
			return s.tolerate(err)
		}
		qty, err := s.chain.SoldQuantityForStore(storeID, productID)
		if err != nil {
			s.report(err)
		}
		s.println(fmt.Sprintf("Quantity: %d", qty))

	case 6:
		storeID, productID, err := s.readStoreAndProduct()
		if err != nil {
			return s.tolerate(err)
		}
		revenue, err := s.chain.SoldRevenueForStore(storeID, productID)
		if err != nil {
			s.report(err)
		}
		s.println("Revenue: " + chain.FormatAmount(revenue))

	case 7:
		storeID, err := s.readID("Enter the store ID: ")
		if err != nil {
			return s.tolerate(err)
		}
		s.println("Revenue: " + chain.FormatAmount(s.chain.TotalRevenueForStore(storeID)))
	}

	return nil
}

func (s *Shell) readStoreAndProduct() (int64, int64, error) {
	storeID, err := s.readID("Enter the store ID: ")
	if err != nil {
		return 0, 0, err
	}
	productID, err := s.readID("Enter the product ID: ")
	if err != nil {
		return 0, 0, err
	}
	return storeID, productID, nil
}

func (s *Shell) readID(prompt string) (int64, error) {
	s.print(prompt)
	token, err := s.next()
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", retailerr.ErrInvalidArgument, token)
	}
	return id, nil
}

func (s *Shell) next() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", errEndOfInput
	}
	return s.in.Text(), nil
}

// tolerate prints bad-input errors and keeps the menu running; anything else
// ends the session.
func (s *Shell) tolerate(err error) error {
	if errors.Is(err, retailerr.ErrInvalidArgument) {
		s.println(err.Error())
		return nil
	}
	return err
}

func (s *Shell) finish(err error) error {
	if errors.Is(err, errEndOfInput) {
		s.println("")
		return nil
	}
	return err
}

func (s *Shell) report(err error) {
	s.println(err.Error())
}

func (s *Shell) print(text string) {
	fmt.Fprint(s.out, text)
}

func (s *Shell) println(text string) {
	fmt.Fprintln(s.out, text)
}
