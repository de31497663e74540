package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/artview/internal/core/browse"
	"github.com/colonyops/artview/internal/core/listing"
	"github.com/colonyops/artview/pkg/iojson"
)

type PageCmd struct {
	flags *Flags

	// flags
	page        int
	limit       int
	selectFirst int
	jsonOutput  bool
}

// NewPageCmd creates a new page command
func NewPageCmd(flags *Flags) *PageCmd {
	return &PageCmd{flags: flags}
}

// Register adds the page command to the application
func (cmd *PageCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "page",
		Usage:     "Fetch and print one page of records",
		UsageText: "artview page [--page N] [--limit M] [--select-first K] [--json]",
		Description: `Fetches a single page from the listing API and prints it.

--select-first marks the first K rows of the page as selected, the same as
the bulk select dialog in the browser. Output is JSON lines when --json is
set or stdout is not a terminal.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "page",
				Usage:       "1-based page index",
				Value:       1,
				Destination: &cmd.page,
			},
			&cli.IntFlag{
				Name:        "limit",
				Usage:       "page size (defaults to pagination.page_size)",
				Destination: &cmd.limit,
			},
			&cli.IntFlag{
				Name:        "select-first",
				Usage:       "select the first K rows of the page",
				Destination: &cmd.selectFirst,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

// pageRecord is the JSON output format for artview page --json.
type pageRecord struct {
	Position int             `json:"position"`
	Selected bool            `json:"selected"`
	Record   listing.Artwork `json:"record"`
}

// pageSummary is the final JSON line written after the records.
type pageSummary struct {
	Page         int   `json:"page"`
	PageSize     int   `json:"page_size"`
	First        int   `json:"first"`
	TotalRecords int   `json:"total_records"`
	TotalPages   int   `json:"total_pages"`
	Selected     []int `json:"selected"`
}

func (cmd *PageCmd) run(ctx context.Context, c *cli.Command) error {
	errOut := c.Root().ErrWriter
	if errOut == nil {
		errOut = os.Stderr
	}
	return cmd.execute(ctx, c.Root().Writer, errOut)
}

func (cmd *PageCmd) execute(ctx context.Context, out, errOut io.Writer) error {
	limit := cmd.limit
	if limit == 0 {
		limit = cmd.flags.Config.Pagination.PageSize
	}
	jsonOut := cmd.jsonOutput || !isTerminal(out)

	store := browse.NewPageStore(cmd.flags.Fetcher, limit)
	if err := store.FetchPage(ctx, cmd.page, limit); err != nil {
		if jsonOut {
			_ = iojson.WriteError(errOut, "fetch failed", fetchErrorData(cmd.page, limit, err))
		}
		return fmt.Errorf("fetch page %d: %w", cmd.page, err)
	}

	state := store.State()
	records := store.Records()

	tracker := browse.NewTracker[listing.Artwork]()
	tracker.Load(state.Slot(), records)
	if cmd.selectFirst > 0 {
		tracker.BulkSelect(cmd.selectFirst)
	}

	if jsonOut {
		return writePageJSON(out, state, records, tracker)
	}
	return writePageTable(out, state, records, tracker)
}

// fetchErrorData describes a failed fetch for the JSON error line.
func fetchErrorData(pageIndex, limit int, err error) map[string]any {
	data := map[string]any{
		"page":  pageIndex,
		"limit": limit,
		"error": err.Error(),
	}

	var fetchErr *listing.FetchError
	if errors.As(err, &fetchErr) {
		data["kind"] = string(fetchErr.Kind)
		if fetchErr.StatusCode != 0 {
			data["status_code"] = fetchErr.StatusCode
		}
	}
	return data
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func writePageJSON(w io.Writer, state browse.PaginationState, records []listing.Artwork, tracker *browse.Tracker[listing.Artwork]) error {
	for i, art := range records {
		line := pageRecord{Position: i, Selected: tracker.IsSelected(i), Record: art}
		if err := iojson.WriteLine(w, line); err != nil {
			return fmt.Errorf("encode record: %w", err)
		}
	}

	return iojson.WriteLine(w, pageSummary{
		Page:         state.PageIndex,
		PageSize:     state.PageSize,
		First:        state.First(),
		TotalRecords: state.TotalRecords,
		TotalPages:   state.TotalPages(),
		Selected:     tracker.Positions().Sorted(),
	})
}

func writePageTable(w io.Writer, state browse.PaginationState, records []listing.Artwork, tracker *browse.Tracker[listing.Artwork]) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "SEL\tID\tTITLE\tARTIST\tORIGIN")

	for i, art := range records {
		sel := " "
		if tracker.IsSelected(i) {
			sel = "*"
		}
		artist, _, _ := strings.Cut(art.ArtistDisplay, "\n")
		_, _ = fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n", sel, art.ID, art.Title, artist, art.PlaceOfOrigin)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\npage %d of %s, %s records, %d selected\n",
		state.PageIndex,
		humanize.Comma(int64(state.TotalPages())),
		humanize.Comma(int64(state.TotalRecords)),
		tracker.Positions().Len(),
	)
	return err
}
