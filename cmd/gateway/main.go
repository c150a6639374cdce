// Gateway is the Interpill AI gateway: a stateless HTTP service that fronts
// Gemini for drug-interaction summaries and Resend for the support form.
//
// Usage:
//
//	# Start the server, configured from the environment
//	gateway serve
//
//	# Start with a configuration file and a listen override
//	gateway serve --config /etc/interpill/gateway.yaml --listen 127.0.0.1:9090
//
//	# Check configuration without starting the server
//	gateway check --output json
//
//	# Show version information
//	gateway version
package main

import (
	"fmt"
	"os"

	"interpill/gateway/pkg/cli"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}
}
