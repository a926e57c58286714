package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var configDefault string
var rootCmd = &cobra.Command{
	Use:   "fast-note-keep",
	Short: "Fast Note Keep",
	// 错误由 Execute 统一输出
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.HelpTemplate()
		cmd.Help()
	},
}

// Execute runs the root command with the embedded default config
func Execute(c string) {
	configDefault = c
	if code := executeArgs(os.Args[1:], os.Stdout, os.Stderr); code != 0 {
		os.Exit(code)
	}
}

// executeArgs runs the command line and returns the process exit code
// executeArgs 执行命令行并返回退出码
func executeArgs(args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}
