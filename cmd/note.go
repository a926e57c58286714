package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	internalApp "github.com/haierkeys/fast-note-keep/internal/app"
	"github.com/haierkeys/fast-note-keep/internal/domain"
	"github.com/haierkeys/fast-note-keep/pkg/convert"
	"github.com/haierkeys/fast-note-keep/pkg/logger"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// noteFlags flags shared by the one-shot note commands
// noteFlags 单次笔记命令共用的参数
type noteFlags struct {
	config string
}

// openApp builds the app container from the config file without loading notes
// openApp 根据配置文件创建应用容器，不加载笔记
func openApp(configFlag string) (*internalApp.App, func(), error) {
	configPath, err := resolveConfigPath(configFlag)
	if err != nil {
		return nil, nil, err
	}
	cfg, _, err := internalApp.LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}

	lg, err := logger.NewLogger(cfg.GetLoggerConfig())
	if err != nil {
		return nil, nil, err
	}

	a, err := internalApp.NewApp(cfg, lg)
	if err != nil {
		_ = lg.Sync()
		return nil, nil, err
	}
	return a, func() {
		_ = a.Shutdown(context.Background())
		_ = lg.Sync()
	}, nil
}

// withNotes opens the configured store, loads the notes and runs fn
// withNotes 打开配置的存储、加载笔记并执行 fn
func withNotes(ctx context.Context, flags *noteFlags, fn func(a *internalApp.App) error) error {
	a, cleanup, err := openApp(flags.config)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := a.LoadNotes(ctx); err != nil {
		return err
	}
	return fn(a)
}

func printNote(w io.Writer, index int, n domain.Note) {
	mark := " "
	if n.IsDone() {
		mark = "x"
	}
	fmt.Fprintf(w, "%d. [%s] %s\n", index, mark, n.Text)
}

func parseIndex(arg string) (int, error) {
	index, err := convert.StrTo(arg).Int()
	if err != nil {
		return 0, errors.Errorf("invalid index %q", arg)
	}
	return index, nil
}

func init() {
	flags := new(noteFlags)

	addCmd := &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a note",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withNotes(cmd.Context(), flags, func(a *internalApp.App) error {
				note, err := a.NoteService.Add(cmd.Context(), strings.Join(args, " "))
				if err != nil || note == nil {
					return err
				}
				printNote(cmd.OutOrStdout(), a.NoteService.IndexOf(note.ID), *note)
				return nil
			})
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withNotes(cmd.Context(), flags, func(a *internalApp.App) error {
				for i, n := range a.NoteService.List() {
					printNote(cmd.OutOrStdout(), i, n)
				}
				return nil
			})
		},
	}

	toggleCmd := &cobra.Command{
		Use:   "toggle <index>",
		Short: "Toggle a note between active and completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return withNotes(cmd.Context(), flags, func(a *internalApp.App) error {
				note, err := a.NoteService.Toggle(cmd.Context(), index)
				if err != nil {
					return err
				}
				printNote(cmd.OutOrStdout(), index, *note)
				return nil
			})
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm <index>",
		Short: "Remove a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return withNotes(cmd.Context(), flags, func(a *internalApp.App) error {
				return a.NoteService.Remove(cmd.Context(), index)
			})
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withNotes(cmd.Context(), flags, func(a *internalApp.App) error {
				return a.NoteService.Clear(cmd.Context())
			})
		},
	}

	for _, c := range []*cobra.Command{addCmd, listCmd, toggleCmd, rmCmd, clearCmd} {
		c.SilenceUsage = true
		c.Flags().StringVarP(&flags.config, "config", "c", "", "config file")
		rootCmd.AddCommand(c)
	}
}
