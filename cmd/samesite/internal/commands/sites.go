package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/kamataryo/sandbox-same-site-cookies/pkg/site"
)

type SitesCmd struct{}

func (c *SitesCmd) Run(ctx context.Context, globals *Globals) error {
	cfg, err := loadConfig(globals)
	if err != nil {
		return err
	}
	sites, err := loadSites(cfg)
	if err != nil {
		return err
	}
	return printSites(os.Stdout, sites)
}

func printSites(w io.Writer, sites *site.Registry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "HOST\tNAME\tSAMESITE")
	for _, s := range sites.All() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Host, s.Name, s.Policy)
	}
	return tw.Flush()
}
