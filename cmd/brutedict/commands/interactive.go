package commands

import (
	"context"
	"log/slog"
	"strings"

	"brutedict/internal/charset"
	"brutedict/internal/token"
)

// RunInteractive shows the mode menu and collects the answers for the chosen
// strategy from the operator.
func RunInteractive(ctx context.Context, streams IOTuple, logger *slog.Logger, opts Options) error {
	s := newSession(streams, logger, opts)
	s.out.Banner()
	s.out.Menu("Select mode:", "Biographical infos", "Keywords-based mix")

	choice, err := s.ask.String("Choose mode (1/2)", "1")
	if err != nil {
		return err
	}
	switch strings.ToLower(choice) {
	case "2", "mix", "m":
		return s.interactiveMix(ctx)
	default:
		return s.interactiveEditorial(ctx)
	}
}

func (s *session) interactiveMix(ctx context.Context) error {
	raw, err := s.ask.String("Keywords (comma-separated)", "")
	if err != nil {
		return err
	}
	maxWords, err := s.ask.Int("Max words per password", 3, 1)
	if err != nil {
		return err
	}
	return s.mix(ctx, charset.SplitList(raw), maxWords)
}

func (s *session) interactiveEditorial(ctx context.Context) error {
	var args EditorialArgs
	questions := []struct {
		label string
		def   string
		dst   *string
	}{
		{"First name", "", &args.Primary},
		{"Last name", "", &args.Secondary},
		{"Nicknames (comma-separated)", "", &args.PrimaryAlts},
		{"Surname variants (comma-separated)", "", &args.SecondaryAlts},
		{"Capitalization? (none/tokens/firstchar)", "none", &args.CapsMode},
	}
	for _, q := range questions {
		v, err := s.ask.String(q.label, q.def)
		if err != nil {
			return err
		}
		*q.dst = v
	}

	if token.ParseMode(args.CapsMode) == token.ModeTokens {
		v, err := s.ask.String("Apply to? (names/surnames/both)", "both")
		if err != nil {
			return err
		}
		args.CapsScope = v
	}

	var err error
	if args.Numbers, err = s.ask.String("Numbers to include (comma-separated)", ""); err != nil {
		return err
	}
	if args.Symbols, err = s.ask.String("Symbols to include (comma-separated)", ""); err != nil {
		return err
	}
	return s.editorial(ctx, args.Input())
}
