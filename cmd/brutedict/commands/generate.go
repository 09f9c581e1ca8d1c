package commands

import (
	"context"
	"log/slog"
	"strings"

	"brutedict/internal/charset"
	"brutedict/internal/estimate"
	"brutedict/internal/generator"
	"brutedict/internal/token"
)

// EditorialArgs is the raw operator input for the editorial strategy.
// List fields are comma-separated.
type EditorialArgs struct {
	Primary       string
	Secondary     string
	PrimaryAlts   string
	SecondaryAlts string
	Numbers       string
	Symbols       string
	CapsMode      string
	CapsScope     string
	// Extra holds further keyword slots separated by ";", each a comma-separated list.
	Extra string
}

// Input builds the engine input from the raw arguments.
func (a EditorialArgs) Input() generator.EditorialInput {
	groups := token.BuildGroups(
		strings.TrimSpace(a.Primary),
		strings.TrimSpace(a.Secondary),
		charset.SplitList(a.PrimaryAlts),
		charset.SplitList(a.SecondaryAlts),
	)
	for _, slot := range strings.Split(a.Extra, ";") {
		if g := token.NewGroup(token.Other, charset.SplitList(slot)...); len(g) > 0 {
			groups = append(groups, g)
		}
	}

	policy := token.Policy{Mode: token.ParseMode(a.CapsMode)}
	if policy.Mode == token.ModeTokens {
		policy.Scope = token.ParseScope(a.CapsScope)
	}
	return generator.EditorialInput{
		Groups:  groups,
		Numbers: charset.Combine(charset.SplitList(a.Numbers)),
		Symbols: charset.ExpandSymbols(charset.SplitList(a.Symbols)),
		Policy:  policy,
	}
}

// RunEditorial estimates, confirms, generates and saves an editorial wordlist.
func RunEditorial(ctx context.Context, streams IOTuple, logger *slog.Logger, opts Options, args EditorialArgs) error {
	return newSession(streams, logger, opts).editorial(ctx, args.Input())
}

func (s *session) editorial(ctx context.Context, in generator.EditorialInput) error {
	engine, err := generator.New(s.opts.Config, s.logger)
	if err != nil {
		return err
	}
	if len(in.Groups) == 0 {
		return s.reportInput(generator.ErrNoGroups)
	}

	cfg := engine.Config()
	bound := estimate.Editorial(estimate.EditorialParams{
		Groups:                 len(in.Groups),
		Numbers:                len(in.Numbers),
		Symbols:                len(in.Symbols),
		MaxParts:               cfg.MaxParts,
		MaxSymbolsPerSeparator: cfg.MaxSymbolsPerSeparator,
		AllowRepeatSymbols:     cfg.AllowRepeatSymbols,
		FirstChar:              in.Policy.FirstChar(),
		VariantsPerSlot:        estimate.MaxVariants(in.Groups, in.Policy),
	})
	ok, err := s.confirm(bound)
	if err != nil || !ok {
		return err
	}

	s.logger.Info("editorial generation started",
		slog.Int("groups", len(in.Groups)),
		slog.Int("numbers", len(in.Numbers)),
		slog.Int("symbols", len(in.Symbols)),
		slog.String("caps_mode", in.Policy.Mode.String()),
		slog.String("caps_scope", in.Policy.Scope.String()),
	)
	s.out.Notice("\nGenerating, do not close this terminal.")
	words, err := engine.Editorial(ctx, in)
	if err != nil {
		return s.reportInput(err)
	}
	return s.persist(ctx, words)
}

// MixArgs is the raw operator input for the mix strategy.
type MixArgs struct {
	Keywords string
	MaxWords int
}

// RunMix estimates, confirms, generates and saves a keyword-mix wordlist.
func RunMix(ctx context.Context, streams IOTuple, logger *slog.Logger, opts Options, args MixArgs) error {
	return newSession(streams, logger, opts).mix(ctx, charset.SplitList(args.Keywords), args.MaxWords)
}

func (s *session) mix(ctx context.Context, keywords []string, maxWords int) error {
	engine, err := generator.New(s.opts.Config, s.logger)
	if err != nil {
		return err
	}
	keywords = generator.MixKeywords(keywords)
	if len(keywords) == 0 {
		return s.reportInput(generator.ErrNoKeywords)
	}

	ok, err := s.confirm(estimate.Mix(len(keywords), maxWords))
	if err != nil || !ok {
		return err
	}

	s.out.Notice("Generating mix mode, this may take a while.")
	words, err := engine.Mix(ctx, keywords, maxWords)
	if err != nil {
		return s.reportInput(err)
	}
	return s.persist(ctx, words)
}
