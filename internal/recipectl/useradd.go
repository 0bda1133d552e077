package recipectl

import (
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/recipeshare/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/recipeshare/internal/server/services"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = func() ([]byte, error) {
	return term.ReadPassword(int(os.Stdin.Fd()))
}

type userAddOptions struct {
	username  string
	email     string
	corporate bool
}

func NewUserAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &userAddOptions{}

	cmd := &cobra.Command{
		Use:   "useradd",
		Short: "Create an account; the password is read from the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUserAdd(cmd, rootOpts, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&opts.email, "email", "e", "", "account email")
	cmd.Flags().BoolVar(&opts.corporate, "corporate", false, "mark the account as corporate")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func promptPassword(w io.Writer) (string, error) {
	fmt.Fprint(w, "Enter password: ")
	pw, err := readPassword()
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(pw), nil
}

func runUserAdd(cmd *cobra.Command, rootOpts *RootOptions, opts *userAddOptions) error {
	if err := rootOpts.requirePersistent("useradd"); err != nil {
		return err
	}

	password, err := promptPassword(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	return rootOpts.withStore(cmd.Context(), func(repos repomanager.RepositoryManager) error {
		us := services.NewUserService(repos, rootOpts.Config)
		user, err := us.Register(cmd.Context(), services.RegisterInput{
			Username:    opts.username,
			Email:       opts.email,
			Password:    password,
			IsCorporate: opts.corporate,
		})
		if err != nil {
			return fmt.Errorf("useradd: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created user %s id=%d corporate=%t\n", user.Username, user.ID, user.IsCorporate)
		return nil
	})
}
