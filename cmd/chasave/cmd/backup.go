package cmd

import (
	"fmt"
	"time"

	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"
)

type snapshotView struct {
	ID      string    `json:"id" yaml:"id"`
	Created time.Time `json:"created" yaml:"created"`
	Size    int       `json:"size" yaml:"size"`
	Path    string    `json:"path" yaml:"path"`
}

func newBackupCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Manage snapshots taken before saves were overwritten",
	}
	cmd.AddCommand(newBackupListCmd(a))
	cmd.AddCommand(newBackupRestoreCmd(a))
	return cmd
}

func newBackupListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List backup snapshots, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openBackupStore()
			if err != nil {
				return err
			}
			defer store.Close()

			snaps, err := store.List()
			if err != nil {
				return fmt.Errorf("failed to list backups: %w", err)
			}

			views := make([]snapshotView, 0, len(snaps))
			for _, snap := range snaps {
				views = append(views, snapshotView{
					ID:      snap.ID.String(),
					Created: snap.Time().UTC(),
					Size:    len(snap.Data),
					Path:    snap.Path,
				})
			}

			out := cmd.OutOrStdout()
			if done, err := printStructured(out, a.opts.Format, views); done {
				return err
			}
			if len(views) == 0 {
				if !a.opts.Quiet {
					fmt.Fprintln(out, "No backups found.")
				}
				return nil
			}

			w := newTable(out)
			fmt.Fprintln(w, "ID\tCREATED\tSIZE\tPATH")
			for _, v := range views {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", v.ID, v.Created.Format(time.RFC3339), v.Size, v.Path)
			}
			return w.Flush()
		},
	}
}

func newBackupRestoreCmd(a *app) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "restore <id>",
		Short: "Write a snapshot back to disk",
		Long: `Restore a backup snapshot to the path it was taken from, or to --to.

The file being replaced is itself snapshotted first.

Examples:
  chasave backup restore 2hYHy8yJ6iXnR5yWcpdBv2f3Uj1
  chasave backup restore 2hYHy8yJ6iXnR5yWcpdBv2f3Uj1 --to copy.cha`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := ksuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid backup id %q: %w", args[0], err)
			}

			store, err := a.openBackupStore()
			if err != nil {
				return err
			}
			defer store.Close()

			snap, err := store.Read(id)
			if err != nil {
				return err
			}
			dst := to
			if dst == "" {
				dst = snap.Path
			}
			if a.cfg.Backup.Enabled {
				if _, err := a.snapshotInto(store, dst); err != nil {
					return fmt.Errorf("backup failed, %s left unchanged: %w", dst, err)
				}
			}

			path, err := store.Restore(id, dst, a.writeSave)
			if err != nil {
				return err
			}
			a.prune(store)

			if !a.opts.Quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "Restored %s to %s\n", id, path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "restore to this path instead of the original")
	return cmd
}
