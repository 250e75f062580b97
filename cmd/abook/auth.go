package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/and161185/abook/internal/errs"
	"github.com/and161185/abook/internal/service"
)

func (c *cli) signupCmd() *cobra.Command {
	var reg service.Registration
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a new account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := promptNewPassword()
			if err != nil {
				return err
			}
			reg.Password = pw
			acc, err := c.app.accounts.Register(cmd.Context(), reg)
			if err != nil {
				return err
			}
			c.app.session.LogIn(acc)
			if err := c.app.saveLogin(acc.Username); err != nil {
				return err
			}
			fmt.Printf("Account created. Welcome, %s!\n", acc.Username)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&reg.Username, "username", "", "unique username")
	f.StringVar(&reg.Email, "email", "", "contact email")
	f.StringVar(&reg.Mobile, "mobile", "", "mobile number")
	return cmd
}

func (c *cli) loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <username>",
		Short: "Log in to an existing account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := promptPassword("Password")
			if err != nil {
				return err
			}
			acc, err := c.app.accounts.Authenticate(cmd.Context(), args[0], pw)
			if err != nil {
				return err
			}
			c.app.session.LogIn(acc)
			if err := c.app.saveLogin(acc.Username); err != nil {
				return err
			}
			fmt.Printf("Welcome, %s!\n", acc.Username)
			return nil
		},
	}
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and forget the saved session",
		RunE: func(cmd *cobra.Command, args []string) error {
			c.app.clearLogin()
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func (c *cli) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			acc, err := c.app.session.Current(cmd.Context())
			switch {
			case errors.Is(err, errs.ErrUnauthenticated), errors.Is(err, errs.ErrNotFound):
				fmt.Println("Not logged in.")
				return nil
			case err != nil:
				return err
			}
			fmt.Printf("%s <%s> %s\n", acc.Username, acc.Email, acc.Mobile)
			return nil
		},
	}
}

func (c *cli) profileCmd() *cobra.Command {
	var upd service.ProfileUpdate
	var changePw bool
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Update the logged-in account's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			cur, err := c.app.session.Current(cmd.Context())
			if err != nil {
				return errs.ErrUnauthenticated
			}
			// unset flags keep the current values
			if upd.Username == "" {
				upd.Username = cur.Username
			}
			if upd.Email == "" {
				upd.Email = cur.Email
			}
			if upd.Mobile == "" {
				upd.Mobile = cur.Mobile
			}
			if changePw {
				if upd.OldPassword, err = promptPassword("Current password"); err != nil {
					return err
				}
				if upd.NewPassword, err = promptNewPassword(); err != nil {
					return err
				}
			}
			acc, err := c.app.accounts.UpdateProfile(cmd.Context(), cur.Username, upd)
			if err != nil {
				return err
			}
			c.app.session.LogIn(acc)
			if err := c.app.saveLogin(acc.Username); err != nil {
				return err
			}
			fmt.Println("Profile updated.")
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&upd.Username, "username", "", "new username")
	f.StringVar(&upd.Email, "email", "", "new email")
	f.StringVar(&upd.Mobile, "mobile", "", "new mobile number")
	f.BoolVar(&changePw, "change-password", false, "prompt for a password change")
	return cmd
}

func (c *cli) accountCmd() *cobra.Command {
	account := &cobra.Command{
		Use:   "account",
		Short: "Account management",
	}

	var yes bool
	del := &cobra.Command{
		Use:   "delete",
		Short: "Delete the logged-in account and end the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			cur, err := c.app.session.Current(cmd.Context())
			if err != nil {
				return errs.ErrUnauthenticated
			}
			if !yes && !confirm(fmt.Sprintf("Delete account %q? This cannot be undone.", cur.Username)) {
				return nil
			}
			if err := c.app.accounts.Delete(cmd.Context(), cur.Username); err != nil {
				return err
			}
			c.app.clearLogin()
			fmt.Println("Account deleted.")
			return nil
		},
	}
	del.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")

	account.AddCommand(del)
	return account
}

func (c *cli) passwordResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "password-reset <username>",
		Short: "Set a new password for an existing username",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := c.app.accounts.Exists(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("username %q: %w", args[0], errs.ErrNotFound)
			}
			pw, err := promptNewPassword()
			if err != nil {
				return err
			}
			if err := c.app.accounts.ResetPassword(cmd.Context(), args[0], pw); err != nil {
				return err
			}
			fmt.Println("Password changed successfully.")
			return nil
		},
	}
}
