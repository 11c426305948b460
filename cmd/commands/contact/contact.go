package contact

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"caresteward/showcase/internal/config"
	"caresteward/showcase/internal/contact"
	"caresteward/showcase/internal/logging"
	"caresteward/showcase/internal/util"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

// isInteractive reports whether prompts and the spinner can be shown.
// Tests replace it.
var isInteractive = func() bool {
	return util.IsTerminal(os.Stdin) && util.IsTerminal(os.Stdout)
}

// errBusy is returned when the flow refuses a submission.
var errBusy = errors.New("a submission is already in progress")

// NewCommand returns the "contact" command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Fill in and submit the demo contact form",
		Long: `Collect a name, email and message, then run the simulated submission.

In a terminal, any field not given as a flag is prompted for. Every field
is required. The submission always succeeds after a short simulated delay
(see "showcase config set submit-delay"). Nothing is sent anywhere.

Examples:
  # Interactive form
  showcase contact

  # Scripted, JSON receipt
  showcase contact --name "John Doe" --email john@example.com --message "Hello" -o json`,
		Args:         cobra.NoArgs,
		RunE:         runContact,
		SilenceUsage: true,
	}

	cmd.Flags().String("name", "", "Your name")
	cmd.Flags().String("email", "", "Your email address")
	cmd.Flags().String("message", "", "The message to send")
	cmd.Flags().StringP("output", "o", "text", "Output format: text or json")

	return cmd
}

func runContact(cmd *cobra.Command, args []string) error {
	var fields contact.Fields
	fields.Name, _ = cmd.Flags().GetString("name")
	fields.Email, _ = cmd.Flags().GetString("email")
	fields.Message, _ = cmd.Flags().GetString("message")

	interactive := isInteractive()
	accessible := os.Getenv("ACCESSIBLE") != ""

	if missing := fields.Missing(); len(missing) > 0 {
		if !interactive {
			return fmt.Errorf("missing required fields: %s", fieldFlags(missing))
		}
		if err := promptFields(&fields, accessible); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Fprintln(cmd.ErrOrStderr(), "Aborted.")
				return nil
			}
			return err
		}
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}

	flow := contact.NewFlow(contact.Options{
		SubmitDelay: settings.SubmitDelay,
		ResetDelay:  settings.ResetDelay,
		Logger:      logging.L(),
	})
	defer flow.Close()

	var snap contact.Snapshot
	if interactive {
		var submitErr error
		spinErr := spinner.New().
			Title("Submitting...").
			Accessible(accessible).
			Output(cmd.ErrOrStderr()).
			Context(cmd.Context()).
			ActionWithErr(func(ctx context.Context) error {
				snap, submitErr = submit(ctx, flow, fields)
				return submitErr
			}).
			Run()
		if spinErr != nil {
			return fmt.Errorf("submission failed: %w", spinErr)
		}
	} else {
		snap, err = submit(cmd.Context(), flow, fields)
		if err != nil {
			return fmt.Errorf("submission failed: %w", err)
		}
	}

	output, _ := cmd.Flags().GetString("output")
	switch output {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(snap.Receipt)
	default:
		printConfirmation(cmd.OutOrStdout(), snap.Receipt)
		return nil
	}
}

// submit hands fields to the flow and waits for the confirmation.
func submit(ctx context.Context, flow *contact.Flow, fields contact.Fields) (contact.Snapshot, error) {
	if !flow.Submit(fields) {
		return contact.Snapshot{}, errBusy
	}
	return flow.Await(ctx, contact.StateSuccess)
}

func promptFields(fields *contact.Fields, accessible bool) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fields.Name).
				Validate(huh.ValidateNotEmpty()),
			huh.NewInput().
				Title("Email").
				Value(&fields.Email).
				Validate(huh.ValidateNotEmpty()),
			huh.NewText().
				Title("Message").
				Value(&fields.Message).
				Validate(huh.ValidateNotEmpty()),
		),
	).WithAccessible(accessible)
	return form.Run()
}

func printConfirmation(w io.Writer, r *contact.Receipt) {
	fmt.Fprintln(w, "✔ Message Sent!")
	fmt.Fprintln(w, "Thank you for your message! We'll get back to you soon.")
	if r == nil {
		return
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Reference:\t%s\n", r.ID)
	fmt.Fprintf(tw, "  From:\t%s <%s>\n", r.Fields.Name, r.Fields.Email)
	fmt.Fprintf(tw, "  Submitted:\t%s\n", r.SubmittedAt.UTC().Format("2006-01-02 15:04:05 UTC"))
	tw.Flush()
}

// fieldFlags names the flags that supply the given fields.
func fieldFlags(fields []contact.Field) string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = "--" + strings.ToLower(f.Label())
	}
	return strings.Join(names, ", ")
}
