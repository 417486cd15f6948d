package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"snapcheck/internal/backend"
	"snapcheck/internal/mute"
)

// errNotIgnored distinguishes "the artifact does not ignore this
// backend" from real failures; main maps it to exit code 2. The
// message is already printed, so cobra must not echo it.
var errNotIgnored = errors.New("not ignored")

var (
	backendName    string
	compatibleName string
)

var ignoredCmd = &cobra.Command{
	Use:   "ignored [artifact]",
	Short: "Resolve whether an artifact ignores a backend",
	Long: `Checks the artifact's ignore directives against a backend. With
--compatible (or the policy's require_compatible_backend_agreement),
both the backend and its compatible counterpart must be declared
ignored. Exits 0 when ignored, 2 when not.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		text := string(data)

		b := backend.New(backendName)
		if compatibleName != "" {
			b = backend.NewCompatible(backendName, backend.New(compatibleName))
		}

		var r mute.Resolver
		var ignored bool
		if policy.RequireCompatibleBackendAgreement || compatibleName != "" {
			ignored = r.IsIgnoredRequiringCompatible(b, text, backend.DefaultPrefixes)
		} else {
			ignored = r.IsIgnored(b, text, backend.DefaultPrefixes)
		}

		if !ignored {
			fmt.Printf("%s: not ignored for %s\n", args[0], b.Name)
			cmd.SilenceErrors = true
			return errNotIgnored
		}
		matched, _ := r.Match(b, text, backend.DefaultPrefixes)
		fmt.Printf("%s: ignored for %s via %q\n", args[0], b.Name, matched)
		return nil
	},
}

func init() {
	ignoredCmd.Flags().StringVar(&backendName, "backend", backend.Any.Name, "backend name to resolve")
	ignoredCmd.Flags().StringVar(&compatibleName, "compatible", "", "compatible backend that must also be ignored")
}
