// Package errors provides error handling conventions for the dotstore CLI.
//
// This package defines an ExitError type for CLI exit code handling and
// exit code constants following standard Unix conventions. Domain errors
// live next to the code that produces them; this package only carries the
// machinery for turning them into process exits.
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, configuration, etc.)
//   - ExitSystem (2): System-related error (I/O, permissions, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. It supports error unwrapping via [errors.Unwrap] and
// [errors.As]:
//
//	err := cmderrors.NewUserError(err, "Run 'dotstore list' to see valid kinds")
//	var exitErr *cmderrors.ExitError
//	if errors.As(err, &exitErr) {
//	    if exitErr.Suggestion != "" {
//	        fmt.Println("Suggestion:", exitErr.Suggestion)
//	    }
//	    os.Exit(exitErr.Code)
//	}
package errors
