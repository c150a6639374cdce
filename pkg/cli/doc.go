/*
Package cli provides the helpers shared by the gateway command: typed
command errors with exit codes, text and JSON output for reports, and a
signal-aware context for serving.

Errors:

	cfg, err := config.Load(path, false, os.LookupEnv)
	if err != nil {
		return cli.NewConfigError(path, err)
	}

	os.Exit(cli.ExitCode(err))

Output:

	format, err := cli.ParseFormat(outputFlag)
	if err != nil {
		return err
	}
	return cli.NewFormatter(format).FormatTo(os.Stdout, report)
*/
package cli
