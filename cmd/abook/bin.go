package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func (c *cli) binCmd() *cobra.Command {
	bin := &cobra.Command{
		Use:   "bin",
		Short: "Recycle bin operations",
	}
	bin.AddCommand(c.binListCmd(), c.binRecoverCmd(), c.binPurgeCmd())
	return bin
}

func (c *cli) binListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recycled entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := c.app.entries.Deleted(cmd.Context())
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("Recycle bin is empty.")
				return nil
			}
			printEntries(os.Stdout, entries)
			return nil
		},
	}
}

func (c *cli) binRecoverCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "recover [n]",
		Short: "Move a recycled entry (or --all) back to the address book",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all {
				if err := c.app.entries.RecoverAll(cmd.Context()); err != nil {
					return err
				}
				fmt.Println("All entries recovered.")
				return nil
			}
			if len(args) != 1 {
				return fmt.Errorf("need a position or --all")
			}
			entries, err := c.app.entries.Deleted(cmd.Context())
			if err != nil {
				return err
			}
			idx, err := parsePos(args[0], len(entries))
			if err != nil {
				return err
			}
			if err := c.app.entries.Recover(cmd.Context(), entries[idx].ID); err != nil {
				return err
			}
			fmt.Println("Entry recovered.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "recover every entry")
	return cmd
}

func (c *cli) binPurgeCmd() *cobra.Command {
	var all, yes bool
	cmd := &cobra.Command{
		Use:   "purge [n]",
		Short: "Permanently delete a recycled entry (or --all)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all {
				if !yes && !confirm("Delete all recycled entries permanently?") {
					return nil
				}
				if err := c.app.entries.PurgeAll(cmd.Context()); err != nil {
					return err
				}
				fmt.Println("Recycle bin emptied.")
				return nil
			}
			if len(args) != 1 {
				return fmt.Errorf("need a position or --all")
			}
			entries, err := c.app.entries.Deleted(cmd.Context())
			if err != nil {
				return err
			}
			idx, err := parsePos(args[0], len(entries))
			if err != nil {
				return err
			}
			if !yes && !confirm(fmt.Sprintf("Delete %q permanently?", entries[idx].Name)) {
				return nil
			}
			if err := c.app.entries.Purge(cmd.Context(), entries[idx].ID); err != nil {
				return err
			}
			fmt.Println("Entry deleted permanently.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "purge every entry")
	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")
	return cmd
}
