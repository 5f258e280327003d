package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/corey/fstack/internal/app"
	"github.com/corey/fstack/internal/domain/stack"
	"github.com/spf13/cobra"
)

// queryOptions holds the root command's own flags.
type queryOptions struct {
	s *session

	function string
	slot     int
	wildcard string
	opposite string
}

// run dispatches between the modes: opposite, cascaded filters, and the
// single positional argument.
func (q *queryOptions) run(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if q.opposite != "" {
		return q.runOpposite(out)
	}

	slotGiven := cmd.Flags().Changed("slot")
	if q.function != "" || q.wildcard != "" || slotGiven {
		if len(args) > 0 {
			return fmt.Errorf("unexpected argument %q with --function/--mbti/--slot", args[0])
		}
		if slotGiven && !stack.Slot(q.slot).Valid() {
			return app.ErrInvalidSlot
		}
		return q.runQuery(out)
	}

	if len(args) == 0 {
		fmt.Fprint(out, q.s.render.Notice("Pass a type (e.g. INFP) or use --function=Fi. See --help."))
		return exitError{exitUsage}
	}
	return q.runResolve(out, args[0])
}

func (q *queryOptions) runOpposite(out io.Writer) error {
	r := q.s.render
	op, ok := q.s.app.Opposite(q.opposite)
	if !ok {
		fmt.Fprint(out, r.Failure(fmt.Sprintf("Unknown type for --opposite: '%s'.", q.opposite)))
		return exitError{exitNotFound}
	}
	fmt.Fprint(out, r.Opposite(op))
	return nil
}

func (q *queryOptions) runQuery(out io.Writer) error {
	r := q.s.render
	query := app.Query{
		Wildcard: q.wildcard,
		Function: q.function,
		Slot:     stack.Slot(q.slot),
	}
	outcome, err := q.s.app.Query(query)
	if err != nil {
		return err
	}

	if query.Wildcard != "" {
		fmt.Fprint(out, r.Candidates(query.Wildcard, outcome.Candidates))
		if len(outcome.Candidates) == 0 {
			fmt.Fprint(out, r.Failure("No type matches the wildcard."))
		}
	}

	switch {
	case query.Function != "" && len(outcome.Results) == 0:
		fmt.Fprint(out, r.Failure(fmt.Sprintf("No hits for function='%s'%s", query.Function, slotSuffix(query, " + slot="))))
	case query.Function != "":
		fmt.Fprint(out, r.Heading("Hits (after optional wildcard + function search"+slotSuffix(query, " + position = ")+"):"))
		fmt.Fprint(out, r.Results(query.Function, outcome.Results))
	case outcome.SlotIgnored:
		fmt.Fprint(out, r.Warning("Note: --slot without --function has no effect (no function search)."))
	}

	if !outcome.Found(query) {
		return exitError{exitNotFound}
	}
	return nil
}

func (q *queryOptions) runResolve(out io.Writer, input string) error {
	r := q.s.render
	res := q.s.app.Resolve(input)
	switch {
	case res.IsCode():
		fmt.Fprint(out, r.Lookup(res.Code, res.Stack))
	case len(res.Results) > 0:
		fmt.Fprint(out, r.Heading(fmt.Sprintf("Input '%s' was interpreted as a cognitive function. Results:", input)))
		fmt.Fprint(out, r.Results(input, res.Results))
	default:
		fmt.Fprint(out, r.Failure(fmt.Sprintf("Neither a type nor a pattern found for '%s'.", strings.TrimSpace(input))))
		return exitError{exitNotFound}
	}
	return nil
}

func slotSuffix(q app.Query, prefix string) string {
	if q.Slot == 0 {
		return ""
	}
	return fmt.Sprintf("%s%d", prefix, int(q.Slot))
}
