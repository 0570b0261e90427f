package log

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"

	"github.com/walteh/renamerc/pkg/execute"
)

// 📢 UserLogger provides user-friendly feedback while a plan is applied
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// 📝 LogOutcome logs one entry's apply outcome with appropriate emoji and
// formatting
func (u *UserLogger) LogOutcome(out execute.Outcome) {
	var printer *pterm.PrefixPrinter
	var msg string
	switch out.Status {
	case execute.OutcomeRenamed:
		printer = pterm.Success.WithPrefix(pterm.Prefix{Text: "✨"})
		msg = fmt.Sprintf("Renamed %s → %s", out.Source, out.Target)
	case execute.OutcomeFailed:
		printer = pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"})
		msg = fmt.Sprintf("Failed %s → %s", out.Source, out.Target)
	case execute.OutcomeAborted:
		printer = pterm.Warning.WithPrefix(pterm.Prefix{Text: "⏭️"})
		msg = fmt.Sprintf("Aborted %s → %s", out.Source, out.Target)
	default:
		printer = pterm.Debug.WithPrefix(pterm.Prefix{Text: "❔"})
		msg = fmt.Sprintf("%s → %s", out.Source, out.Target)
	}

	if out.Error != "" {
		printer.Println(msg + " (" + out.Error + ")")
		u.log.Error().Str("reason", out.Error).Msg(msg)
	} else {
		printer.Println(msg)
		u.log.Info().Msg(msg)
	}
}

// 📊 LogSummary logs the final apply summary
func (u *UserLogger) LogSummary(res *execute.Result) {
	msg := fmt.Sprintf("%d renamed, %d failed, %d aborted in %s",
		res.Renamed, res.Failed, res.Aborted, res.Dir)
	if res.Failed > 0 || res.Aborted > 0 {
		pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(msg)
		u.log.Warn().Msg(msg)
	} else {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(msg)
		u.log.Info().Msg(msg)
	}
}

// 🔍 LogValidation logs validation results
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	if valid {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(description)
		u.log.Info().Msg(description)
		return
	}
	if err != nil {
		pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(description)
		pterm.Error.Println(err)
		u.log.Error().Err(err).Msg(description)
	} else {
		pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(description)
		u.log.Warn().Msg(description)
	}
}
