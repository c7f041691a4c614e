package cmd

import (
	"fmt"
	"io"

	go_json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/xvierd/zenith/internal/domain"
)

var (
	napHours  float64
	sleepJSON bool
)

// sleepCmd computes a night from the command line.
var sleepCmd = &cobra.Command{
	Use:   "sleep <bedtime> <wakeup>",
	Short: "Compute sleep duration and feedback",
	Long: `Compute the sleep duration between a bedtime and a wake-up time (HH:MM),
with nap advice and a warning for risky schedules.

A wake-up at or before the bedtime is taken to be on the next day.`,
	Example: `  zenith sleep 23:30 07:00
  zenith sleep 03:00 13:30 --nap 0.4 --json`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		bedtime, err := domain.ParseTimeOfDay(args[0])
		if err != nil {
			return fmt.Errorf("invalid bedtime: %w", err)
		}
		wakeup, err := domain.ParseTimeOfDay(args[1])
		if err != nil {
			return fmt.Errorf("invalid wake-up time: %w", err)
		}
		if napHours < 0 || napHours > domain.MaxNapHours {
			return fmt.Errorf("--nap must be between 0 and %v hours", domain.MaxNapHours)
		}

		report := newSleepReport(bedtime, wakeup, napHours)
		if sleepJSON {
			return writeSleepJSON(cmd.OutOrStdout(), report)
		}
		writeSleepText(cmd.OutOrStdout(), report)
		return nil
	},
}

func init() {
	sleepCmd.Flags().Float64Var(&napHours, "nap", 0, "Nap length in hours (0-3)")
	sleepCmd.Flags().BoolVar(&sleepJSON, "json", false, "Output results in JSON format")
}

// sleepReport is the result of the sleep command.
type sleepReport struct {
	Bedtime    string          `json:"bedtime"`
	Wakeup     string          `json:"wakeup"`
	Hours      float64         `json:"hours"`
	Duration   string          `json:"duration"`
	NapMinutes int             `json:"nap_minutes"`
	NapLabel   string          `json:"nap_label"`
	NapAdvice  string          `json:"nap_advice,omitempty"`
	Risky      bool            `json:"risky"`
	Warning    *warningPayload `json:"warning,omitempty"`
}

type warningPayload struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Tip    string `json:"tip"`
}

func newSleepReport(bedtime, wakeup domain.TimeOfDay, nap float64) sleepReport {
	hours, _ := domain.ComputeSleepHours(&bedtime, &wakeup)
	advice := domain.AdviseNap(nap)
	r := sleepReport{
		Bedtime:    bedtime.String(),
		Wakeup:     wakeup.String(),
		Hours:      hours,
		Duration:   domain.FormatSleepHours(hours),
		NapMinutes: advice.Minutes,
		NapLabel:   advice.Label,
		NapAdvice:  advice.Message,
	}
	if adv, risky := domain.AdviseSchedule(&bedtime, &wakeup); risky {
		r.Risky = true
		r.Warning = &warningPayload{Title: adv.Title, Detail: adv.Detail, Tip: adv.Tip}
	}
	return r
}

func writeSleepJSON(w io.Writer, r sleepReport) error {
	data, err := go_json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeSleepText(w io.Writer, r sleepReport) {
	fmt.Fprintf(w, "Sleep: %s (%s - %s)\n", r.Duration, r.Bedtime, r.Wakeup)
	fmt.Fprintf(w, "Nap:   %s\n", r.NapLabel)
	if r.NapAdvice != "" {
		fmt.Fprintf(w, "       %s\n", r.NapAdvice)
	}
	if r.Warning != nil {
		fmt.Fprintf(w, "\n⚠ %s\n  %s\n  %s\n", r.Warning.Title, r.Warning.Detail, r.Warning.Tip)
	}
}
