package domain

// InstallOutcome is the tagged result of one external install attempt. A
// failed attempt carries the tool's combined stdout/stderr as the diagnostic;
// the retry controller never inspects the text itself, only the classifier does.
type InstallOutcome struct {
	OK         bool
	Diagnostic string
}

// Installed returns a successful outcome.
func Installed() InstallOutcome {
	return InstallOutcome{OK: true}
}

// InstallFailed returns a failed outcome carrying the raw diagnostic.
func InstallFailed(diagnostic string) InstallOutcome {
	return InstallOutcome{Diagnostic: diagnostic}
}
