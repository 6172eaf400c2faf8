package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/openfleet/fleetbook"
)

// Blob service configuration comes from the environment so the tokens
// never appear in shell history.
const (
	EnvBlobURL    = "FBK_BLOB_URL"
	EnvBlobAccess = "FBK_BLOB_ACCESS"
)

func blobClient() (*fleetbook.BlobClient, error) {
	base := os.Getenv(EnvBlobURL)
	if base == "" {
		return nil, fmt.Errorf("no blob service configured, set %s", EnvBlobURL)
	}
	return fleetbook.NewBlobClient(base, os.Getenv(EnvBlobAccess)), nil
}

// backupCmd holds the flags for the 'backup' subcommand.
type backupCmd struct {
	store string
}

func (*backupCmd) Name() string     { return "backup" }
func (*backupCmd) Synopsis() string { return "upload a store to the blob service" }
func (*backupCmd) Usage() string {
	return `fbk backup -s <book|fines>

  Uploads a snapshot of a store to the configured blob service and
  remembers its URL for 'fbk restore'. Configure the service with the
  FBK_BLOB_URL and FBK_BLOB_ACCESS environment variables.
`
}

func (c *backupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.store, "s", fleetbook.BookKey, "store to back up: book or fines")
}

func (c *backupCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := currentSession(fleetbook.PermExport); err != nil {
		return fail(err)
	}
	client, err := blobClient()
	if err != nil {
		return fail(err)
	}
	data, err := encodeStore(c.store)
	if err != nil {
		return fail(err)
	}
	url, err := client.Upload(ctx, fleetbook.BackupName(c.store, time.Now()), data)
	if err != nil {
		return fail(err)
	}
	prefs, err := fleetbook.LoadPrefs(DataDir())
	if err != nil {
		return fail(err)
	}
	prefs.RememberBackup(c.store, url)
	if err := fleetbook.SavePrefs(DataDir(), prefs); err != nil {
		return fail(err)
	}
	fmt.Printf("Backed up %s to %s\n", c.store, url)
	return subcommands.ExitSuccess
}

// restoreCmd holds the flags for the 'restore' subcommand.
type restoreCmd struct {
	store string
	url   string
	mode  string
}

func (*restoreCmd) Name() string     { return "restore" }
func (*restoreCmd) Synopsis() string { return "download a backup and import it" }
func (*restoreCmd) Usage() string {
	return `fbk restore -s <book|fines> [-url <blob-url>] [-mode <merge|replace>]

  Downloads a backup from the blob service and reconciles it into the
  store, replace mode by default. Without -url the last backup taken with
  'fbk backup' is used.
`
}

func (c *restoreCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.store, "s", fleetbook.BookKey, "store to restore: book or fines")
	f.StringVar(&c.url, "url", "", "blob URL, defaults to the last backup")
	f.StringVar(&c.mode, "mode", "replace", "reconciliation policy: merge or replace")
}

func (c *restoreCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := currentSession(fleetbook.PermImport); err != nil {
		return fail(err)
	}
	policy, err := fleetbook.ParseMergePolicy(c.mode)
	if err != nil {
		return usageError(err)
	}
	url := c.url
	if url == "" {
		prefs, err := fleetbook.LoadPrefs(DataDir())
		if err != nil {
			return fail(err)
		}
		url = prefs.Backup(c.store)
	}
	if url == "" {
		return fail(fmt.Errorf("no backup known for %q, pass -url", c.store))
	}
	client, err := blobClient()
	if err != nil {
		return fail(err)
	}
	data, err := client.Download(ctx, url)
	if err != nil {
		return fail(err)
	}
	stats, err := applyImport(c.store, data, policy)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Restored %s into %s (%s)\n", stats, c.store, policy)
	return subcommands.ExitSuccess
}
