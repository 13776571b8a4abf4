package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jisook325/tracker/internal/auth"
)

// SignOptions holds flags for the sign command.
type SignOptions struct {
	User   string
	Email  string
	Secret string
}

// NewSignCommand creates the sign command.
func NewSignCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SignOptions{}

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Print signed identity headers",
		Long: `Print the X-User-* headers an edge proxy would send for a user, signed
with WORKER_SECRET (or --secret). The signature is valid for the configured
tolerance, five minutes by default.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret := opts.Secret
			if secret == "" {
				secret = rootOpts.LoadConfig().WorkerSecret
			}
			if secret == "" {
				return errors.New("no secret: set WORKER_SECRET or pass --secret")
			}

			h := auth.Sign(secret, opts.User, opts.Email, time.Now())
			keys := []string{auth.HeaderUserID, auth.HeaderUserEmail, auth.HeaderUserTS, auth.HeaderUserSig}

			if rootOpts.Format == "json" {
				out := make(map[string]string, len(keys))
				for _, k := range keys {
					out[k] = h.Get(k)
				}
				return json.NewEncoder(cmd.OutOrStdout()).Encode(out)
			}
			for _, k := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", k, h.Get(k))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.User, "user", auth.DefaultMockUser, "external user id")
	cmd.Flags().StringVar(&opts.Email, "email", "", "user email")
	cmd.Flags().StringVar(&opts.Secret, "secret", "", "shared secret (defaults to WORKER_SECRET)")

	return cmd
}
