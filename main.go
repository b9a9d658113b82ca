package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"

	"github.com/drone/drone-tessy/plugin"
)

func main() {
	// .env files are optional, they only help local runs
	_ = godotenv.Load(".env")

	var args plugin.Args
	if err := envconfig.Process("", &args); err != nil {
		logrus.Fatalln("Error processing environment variables:", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newRootCmd(&args, run).ExecuteContext(ctx); err != nil {
		logrus.WithError(err).Fatal("Plugin execution failed")
	}
}

// run validates the arguments and executes the plugin.
func run(ctx context.Context, args plugin.Args) error {
	setLogLevel(args.Level)

	if err := plugin.ValidateInputs(args); err != nil {
		return err
	}
	return plugin.Exec(ctx, args)
}

func setLogLevel(level string) {
	if level == "" {
		return
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.WithField("Level", level).Warn("Unknown log level, keeping info")
		return
	}
	logrus.SetLevel(lvl)
}
