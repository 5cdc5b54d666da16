// Package output provides structured output handling for the folio CLI.
//
// Every command works for people and for scripts: with --json all output,
// errors included, is a single JSON document on stdout.
//
// # Printer
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonFlag, output.IsTTY(cmd.OutOrStdout()))
//
//	printer.Success(map[string]any{"message": "Resume saved", "id": doc.DocumentID()})
//	printer.Error(err)
//	printer.Diagnostics("classic", diags)
//
// Human output is styled with lipgloss; styles are dropped when the writer
// is not a terminal or --color=never is given.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0
//	output.ExitUserError   // 1: bad arguments, invalid or missing documents
//	output.ExitSystemError // 2: storage, database or model API failures
//	output.ExitConflict    // 3: document or template already exists
//
// Errors built with NewUserError, NewSystemError and NewConflictError carry
// their code; GetExitCode recovers it for the process exit status and for
// the {"error": "...", "code": N} JSON error shape.
package output
