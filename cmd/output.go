package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/soulgarden/cbpro/paginator"
)

func heading(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, aurora.Bold(aurora.Cyan(fmt.Sprintf(format, args...))))
}

func printJSON(v interface{}) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(os.Stdout, string(body))

	return err
}

// printPages prints up to max items (all when max is 0). Stopping early
// leaves the remaining pages unrequested.
func printPages(ctx context.Context, it *paginator.Iterator, max int) error {
	n := 0

	for (max == 0 || n < max) && it.Next(ctx) {
		if _, err := fmt.Fprintln(os.Stdout, string(it.Item())); err != nil {
			return err
		}

		n++
	}

	if err := it.Err(); err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, aurora.Green(fmt.Sprintf("%d items, %d requests", n, it.Pages())))

	return nil
}
