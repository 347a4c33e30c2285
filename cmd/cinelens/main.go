package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/op/go-logging"
	"github.com/spf13/viper"

	"github.com/cinelens-org/cinelens/report"
	"github.com/cinelens-org/cinelens/stats"
)

var log = logging.MustGetLogger("log")

// InitConfig uses viper to parse configuration parameters. Viper is
// configured to read variables from both environment variables and the
// config file ./config.yaml. Environment variables take precedence over
// parameters defined in the configuration file.
func InitConfig() (*viper.Viper, error) {
	v := viper.New()

	// Configure viper to read env variables with the CINELENS_ prefix
	v.AutomaticEnv()
	v.SetEnvPrefix("cinelens")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("data.path")
	v.BindEnv("output.dir")
	v.BindEnv("top.n")
	v.BindEnv("log.level")

	v.SetDefault("data.path", "movies.csv")
	v.SetDefault("output.dir", "out")
	v.SetDefault("top.n", stats.DefaultTopN)
	v.SetDefault("log.level", "INFO")

	// Configuration file is optional; env variables and defaults cover
	// everything it can set.
	v.SetConfigFile("./config.yaml")
	if err := v.ReadInConfig(); err != nil {
		fmt.Println("Configuration could not be read from config file. Using env variables instead")
	}

	return v, nil
}

// InitLogger receives the log level to be set in go-logging as a string.
// If the level string is not valid an error is returned.
func InitLogger(logLevel string) error {
	baseBackend := logging.NewLogBackend(os.Stdout, "", 0)
	format := logging.MustStringFormatter(
		`%{time:2006-01-02 15:04:05} %{level:.5s}     %{message}`,
	)
	backendFormatter := logging.NewBackendFormatter(baseBackend, format)

	backendLeveled := logging.AddModuleLevel(backendFormatter)
	logLevelCode, err := logging.LogLevel(logLevel)
	if err != nil {
		return err
	}
	backendLeveled.SetLevel(logLevelCode, "")

	logging.SetBackend(backendLeveled)
	return nil
}

func main() {
	v, err := InitConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read config: %v\n", err)
		os.Exit(1)
	}

	if err := InitLogger(v.GetString("log.level")); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v\n", err)
		os.Exit(1)
	}

	params := report.Params{
		DataPath:  v.GetString("data.path"),
		OutputDir: v.GetString("output.dir"),
		TopN:      v.GetInt("top.n"),
	}
	log.Infof("analyzing %s → %s", params.DataPath, params.OutputDir)

	summary, err := report.Run(params)
	if err != nil {
		log.Criticalf("run failed: %v", err)
		os.Exit(1)
	}

	log.Infof("done: %s", summary)
	for _, artifact := range summary.Artifacts {
		log.Infof("  wrote %s", artifact)
	}
}
