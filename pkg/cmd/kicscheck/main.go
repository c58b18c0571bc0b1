package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/templateguard/kics-validator/pkg/kics"
	"github.com/templateguard/kics-validator/pkg/logme"
	"github.com/templateguard/kics-validator/pkg/output"
	"github.com/templateguard/kics-validator/pkg/validation"
)

func main() {
	var (
		configFlag  = flag.String("config", "", "Path to a YAML configuration file")
		jsonFlag    = flag.Bool("json", false, "Print the report as JSON instead of colored text")
		assetsFlag  = flag.String("assets", "", "Path to the bundled kics assets directory")
		timeoutFlag = flag.Duration("timeout", 5*time.Minute, "Maximum scan duration, 0 for no limit")
	)

	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "missing template path (file or glob)")
		flag.Usage()
		os.Exit(1)
	}

	cfg := kics.Config{}
	if *configFlag != "" {
		var err error
		cfg, err = readConfigFile(*configFlag)
		if err != nil {
			logme.Errorln(fmt.Errorf("couldn't read configuration: %w", err))
			os.Exit(1)
		}
	}
	if *assetsFlag != "" {
		cfg.AssetsDir = *assetsFlag
	}
	cfg.Timeout = *timeoutFlag

	templatePaths, err := expandTemplatePaths(flag.Args())
	if err != nil {
		logme.Errorln(err)
		os.Exit(1)
	}

	validator, err := kics.New(cfg)
	if err != nil {
		logme.Errorln(fmt.Errorf("couldn't construct validator: %w", err))
		os.Exit(1)
	}

	report := validator.Validate(context.Background(), validation.Context{
		TemplatePaths: templatePaths,
	})

	marshaler := output.Marshaler(output.MarshalCLI)
	if *jsonFlag {
		marshaler = output.NewJSONMarshaler("kics")
	}

	rendered, err := marshaler.Marshal(report)
	if err != nil {
		logme.Errorln(fmt.Errorf("couldn't render report: %w", err))
		os.Exit(1)
	}
	fmt.Fprint(os.Stdout, string(rendered))

	os.Exit(output.ExitCode(report))
}

func readConfigFile(path string) (kics.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return kics.Config{}, err
	}

	var config kics.Config
	if err := yaml.Unmarshal(b, &config); err != nil {
		return kics.Config{}, err
	}
	return config, nil
}

// expandTemplatePaths resolves glob patterns (doublestar syntax) into
// concrete file paths. Arguments that match nothing pass through verbatim
// and are left for the scanner to report.
func expandTemplatePaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad template pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			paths = append(paths, arg)
			continue
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}
