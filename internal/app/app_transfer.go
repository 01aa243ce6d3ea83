package app

// ─────────────────────────────────────────────────────────────
// Transfer Handlers — export, import, reset
// ─────────────────────────────────────────────────────────────

import "time"

// ExportContent returns the snapshot document for the frontend to offer
// as a download.
func (a *App) ExportContent() (string, error) {
	return a.transfer.Export()
}

// ExportFilename returns the date-stamped name for the download artifact.
func (a *App) ExportFilename() string {
	return a.transfer.ExportFilename(time.Now())
}

// ExportContentToFile writes the export artifact into the backup
// directory and returns its path.
func (a *App) ExportContentToFile() (string, error) {
	return a.transfer.ExportToFile(a.cfg.Backup.Dir, time.Now())
}

// ImportContent swaps a previously exported document into the durable
// slot. The frontend reads the chosen file and passes its content; a
// document that fails validation leaves the slot untouched.
func (a *App) ImportContent(document string) error {
	return a.transfer.Import(a.ctx, document)
}

// ResetContent clears the durable slot and re-seeds from defaults.
// The frontend confirms with the user before calling this.
func (a *App) ResetContent() error {
	return a.transfer.Reset(a.ctx)
}
