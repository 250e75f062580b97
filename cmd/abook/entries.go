package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/and161185/abook/internal/model"
	"github.com/and161185/abook/internal/refdata"
	"github.com/and161185/abook/internal/render"
)

// entryInput collects the nine entry fields from flags. Empty fields fall
// back to the base entry when editing.
type entryInput struct {
	name, phone, email, address, city, state, pincode, country, kind string
}

func (in *entryInput) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&in.name, "name", "", "full name")
	f.StringVar(&in.phone, "phone", "", "phone number")
	f.StringVar(&in.email, "email", "", "email address")
	f.StringVar(&in.address, "address", "", "postal address (may contain newlines)")
	f.StringVar(&in.city, "city", "", "city")
	f.StringVar(&in.state, "state", "", "state or union territory")
	f.StringVar(&in.pincode, "pincode", "", "postal code")
	f.StringVar(&in.country, "country", "", "country")
	f.StringVar(&in.kind, "type", "", `entry type: "Personal" or "Business"`)
}

func (in *entryInput) apply(base model.Entry) model.Entry {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&base.Name, in.name)
	set(&base.Phone, in.phone)
	set(&base.Email, in.email)
	set(&base.Address, in.address)
	set(&base.City, in.city)
	set(&base.State, in.state)
	set(&base.Pincode, in.pincode)
	set(&base.Country, in.country)
	if in.kind != "" {
		base.Type = model.EntryType(in.kind)
	}
	return base
}

func (c *cli) addCmd() *cobra.Command {
	in := &entryInput{}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an entry to the address book",
		RunE: func(cmd *cobra.Command, args []string) error {
			e := in.apply(model.Entry{})
			c.warnUnknownRefs(e)
			added, err := c.app.entries.Add(cmd.Context(), e)
			if err != nil {
				return err
			}
			fmt.Printf("Entry saved: %s.\n", added.Name)
			return nil
		},
	}
	in.bind(cmd)
	return cmd
}

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List address book entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := c.app.entries.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("Address book is empty.")
				return nil
			}
			printEntries(os.Stdout, entries)
			return nil
		},
	}
}

func (c *cli) editCmd() *cobra.Command {
	in := &entryInput{}
	cmd := &cobra.Command{
		Use:   "edit <n>",
		Short: "Edit the entry at list position n",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := c.app.entries.List(cmd.Context())
			if err != nil {
				return err
			}
			idx, err := parsePos(args[0], len(entries))
			if err != nil {
				return err
			}
			e := in.apply(entries[idx])
			c.warnUnknownRefs(e)
			if err := c.app.entries.Update(cmd.Context(), entries[idx].ID, e); err != nil {
				return err
			}
			fmt.Println("Entry updated.")
			return nil
		},
	}
	in.bind(cmd)
	return cmd
}

func (c *cli) rmCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "rm [n]",
		Short: "Move an entry (or --all) to the recycle bin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all {
				if err := c.app.entries.SoftDeleteAll(cmd.Context()); err != nil {
					return err
				}
				fmt.Println("All entries moved to the recycle bin.")
				return nil
			}
			if len(args) != 1 {
				return fmt.Errorf("need a position or --all")
			}
			entries, err := c.app.entries.List(cmd.Context())
			if err != nil {
				return err
			}
			idx, err := parsePos(args[0], len(entries))
			if err != nil {
				return err
			}
			if err := c.app.entries.SoftDelete(cmd.Context(), entries[idx].ID); err != nil {
				return err
			}
			fmt.Println("Entry moved to the recycle bin.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "move every entry")
	return cmd
}

func (c *cli) printCmd() *cobra.Command {
	var out, format string
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Render a print preview of the address book",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := c.app.entries.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No entries to print.")
				return nil
			}
			r, ok := render.New(format)
			if !ok {
				return fmt.Errorf("unknown format %q (want html or text)", format)
			}
			doc, err := r.Render(entries)
			if err != nil {
				return err
			}
			switch {
			case out != "":
				if err := os.WriteFile(out, doc, 0o644); err != nil {
					return err
				}
			case format == "text":
				_, err = os.Stdout.Write(doc)
				return err
			default:
				f, err := os.CreateTemp("", "abook-print-*.html")
				if err != nil {
					return err
				}
				if _, err := f.Write(doc); err != nil {
					f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return err
				}
				out = f.Name()
			}
			fmt.Printf("Preview written to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "write the preview to this file")
	cmd.Flags().StringVar(&format, "format", "html", "preview format: html or text")
	return cmd
}

func (c *cli) warnUnknownRefs(e model.Entry) {
	if e.State != "" && !refdata.IsState(e.State) {
		c.logger.Warn("state not in reference list", zap.String("state", e.State))
	}
	if e.Country != "" && !refdata.IsCountry(e.Country) {
		c.logger.Warn("country not in reference list", zap.String("country", e.Country))
	}
}

// parsePos converts a 1-based list position argument to a slice index.
func parsePos(arg string, n int) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil || i < 1 {
		return 0, fmt.Errorf("invalid position %q", arg)
	}
	if i > n {
		return 0, fmt.Errorf("position %d out of range (have %d)", i, n)
	}
	return i - 1, nil
}

func printEntries(w io.Writer, entries []model.Entry) {
	for i, e := range entries {
		fmt.Fprintf(w, "%d. %s (%s)\n", i+1, e.Name, e.Type)
		fmt.Fprintf(w, "   Phone: %s  Email: %s\n", e.Phone, e.Email)
		fmt.Fprintf(w, "   %s, %s, %s %s, %s\n",
			strings.ReplaceAll(e.Address, "\n", " / "), e.City, e.State, e.Pincode, e.Country)
	}
}
