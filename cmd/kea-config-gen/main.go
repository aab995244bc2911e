package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"isc.org/keagen"
	keaconfig "isc.org/keagen/appcfg/kea"
	keagenutil "isc.org/keagen/util"
)

// The subnet of the generated configuration. Its pool spans the hosts
// from the 10th to the 20th.
const (
	referenceSubnet    = "192.168.10.0/24"
	referencePoolFirst = 10
	referencePoolLast  = 20
)

// Builds the reference configuration: the default DHCPv4 configuration
// with one subnet, one pool and the DNS servers sent to all clients.
func buildConfig() (*keaconfig.Config, error) {
	config := keaconfig.NewDefaultConfig()
	subnets := &config.Dhcp4.Subnet4

	id := subnets.AddConfig(referenceSubnet)
	low, err := keagenutil.HostAddress(referenceSubnet, referencePoolFirst)
	if err != nil {
		return nil, err
	}
	high, err := keagenutil.HostAddress(referenceSubnet, referencePoolLast)
	if err != nil {
		return nil, err
	}
	if !subnets.AddPoolForConfig(id, low, high) {
		return nil, errors.Errorf("subnet %d not found", id)
	}

	config.Dhcp4.OptionData.AddOptionAlways("domain-name-servers", "192.0.2.1, 192.0.2.2")
	return config, nil
}

// Renders the configuration and writes it to the writer. An incomplete
// configuration is written anyway unless the strict mode is enabled.
func writeConfig(writer io.Writer, config *keaconfig.Config, strict, hash bool) error {
	rendered, err := config.Render()
	switch {
	case rendered == nil:
		return err
	case err != nil && strict:
		return errors.WithMessage(err, "generated configuration is incomplete")
	}

	if hash {
		log.WithField("hash", keaconfig.NewHasher().Hash(string(rendered))).Info("Generated configuration")
	}

	_, err = writer.Write(rendered)
	return errors.Wrap(err, "failed to write the configuration")
}

// Execute the generator.
func runGenerate(settings *cli.Context) error {
	config, err := buildConfig()
	if err != nil {
		return err
	}
	return writeConfig(settings.App.Writer, config, settings.Bool("strict"), settings.Bool("hash"))
}

// Prepare urfave cli app with all flags defined.
func setupApp() *cli.App {
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Println(c.App.Version)
	}

	cli.HelpFlag = &cli.BoolFlag{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   "Show help",
	}

	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"v"},
		Usage:   "Print the version",
	}

	app := &cli.App{
		Name:  "Kea Config Generator",
		Usage: "A tool generating Kea DHCPv4 server configuration.",
		Description: `The tool prints the Kea DHCPv4 configuration document to stdout.
   The diagnostics are logged to stderr.`,
		Version:  keagen.Version,
		HelpName: "kea-config-gen",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "",
				Usage:   "Logging level can be specified using env variable only. Allowed values: are DEBUG, INFO, WARN, ERROR",
				Value:   "INFO",
				EnvVars: []string{keagenutil.LogLevelEnvName},
			},
			&cli.BoolFlag{
				Name:    "strict",
				Usage:   "Fail instead of printing an incomplete configuration",
				Aliases: []string{"s"},
				EnvVars: []string{"KEA_GEN_STRICT"},
			},
			&cli.BoolFlag{
				Name:    "hash",
				Usage:   "Log the hash of the generated configuration",
				EnvVars: []string{"KEA_GEN_HASH"},
			},
		},
		Action: runGenerate,
	}

	return app
}

func main() {
	// Setup logging
	keagenutil.SetupLogging()

	app := setupApp()
	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
