package armybook

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/mekane/Grimdark-Future-Rules-Parser/parser"
)

var (
	ErrOrphanOption = errors.New("option outside an upgrade group")
	ErrOrphanHeader = errors.New("group header outside an upgrade package")
)

var (
	packageRe    = regexp.MustCompile(`^[A-Z]{1,2}$`)
	unitLineRe   = regexp.MustCompile(`^[^\[(]+ \[`)
	listMarkerRe = regexp.MustCompile(`^[-•*]\s*`)
)

// Assembler reads a statblock book:
//
//	Grunt [1] 5+ 6+ Rifle (24”, A1) Slow A 20pts
//
//	A
//	Replace one Rifle:
//	    Storm Rifle (24”, A2) +5pts
//
// Lines that fail to parse are reported and skipped.
type Assembler struct {
	logger *zap.Logger
}

func NewAssembler(logger *zap.Logger) *Assembler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assembler{logger: logger}
}

// AssembleFile assembles the book stored at path.
func (a *Assembler) AssembleFile(path string) (*Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	book, err := a.Assemble(f)
	if book != nil {
		a.logger.Info("assembled book",
			zap.String("path", path),
			zap.Int("units", len(book.Units)),
			zap.Int("packages", len(book.Packages)),
			zap.Int("errors", len(multierr.Errors(err))))
	}
	return book, err
}

// Assemble returns the book along with every per-line error combined into
// one; the book is never nil unless reading fails.
func (a *Assembler) Assemble(r io.Reader) (*Book, error) {
	book := &Book{Units: []parser.Unit{}}
	var errs error

	pkg := -1   // index into book.Packages
	group := -1 // index into book.Packages[pkg].Groups
	skipping := false

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fail := func(err error) {
			a.logger.Warn("skipping line", zap.Int("line", lineNum), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("line %d: %w", lineNum, err))
		}

		switch {
		case packageRe.MatchString(line):
			group, skipping = -1, false
			if pkg = book.packageIndex(line); pkg >= 0 {
				a.logger.Warn("merging repeated package", zap.Int("line", lineNum), zap.String("letter", line))
				continue
			}
			book.Packages = append(book.Packages, Package{Letter: line, Groups: []Group{}})
			pkg = len(book.Packages) - 1

		case unitLineRe.MatchString(line):
			pkg, group, skipping = -1, -1, false
			unit, err := parser.ParseUnit(line)
			if err != nil {
				fail(err)
				continue
			}
			a.logger.Debug("unit", zap.String("name", unit.Name), zap.Int("points", unit.Points))
			book.Units = append(book.Units, unit)

		case strings.HasSuffix(line, ":"):
			if pkg < 0 {
				fail(fmt.Errorf("%w: %q", ErrOrphanHeader, line))
				continue
			}
			spec, err := parser.ParseUpgradeGroup(line)
			if err != nil {
				group, skipping = -1, true
				fail(err)
				continue
			}
			p := &book.Packages[pkg]
			p.Groups = append(p.Groups, Group{
				Header:  strings.TrimSuffix(line, ":"),
				Spec:    spec,
				Options: []parser.Upgrade{},
			})
			group, skipping = len(p.Groups)-1, false

		default:
			if skipping {
				a.logger.Debug("option under rejected header", zap.Int("line", lineNum))
				continue
			}
			if pkg < 0 || group < 0 {
				fail(fmt.Errorf("%w: %q", ErrOrphanOption, line))
				continue
			}
			option, err := parser.ParseUpgrade(listMarkerRe.ReplaceAllString(line, ""))
			if err != nil {
				fail(err)
				continue
			}
			g := &book.Packages[pkg].Groups[group]
			g.Options = append(g.Options, option)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return book, errs
}
