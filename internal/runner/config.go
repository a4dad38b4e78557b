package runner

import (
	"os"
	"path/filepath"

	"github.com/projectdiscovery/gologger"
	fileutil "github.com/projectdiscovery/utils/file"
	"gopkg.in/yaml.v3"

	"github.com/colprofile/core/profile"
)

// fileConfig is the on-disk shape of a colprofile options file, mirroring
// profile.Options with yaml tags for the fields a user would tune.
type fileConfig struct {
	MaxClusters     int     `yaml:"max_clusters"`
	MinCoverage     float64 `yaml:"min_coverage"`
	EnumThreshold   int     `yaml:"enum_threshold"`
	DetectAnomalies *bool   `yaml:"detect_anomalies"`
	MergeThreshold  float64 `yaml:"merge_threshold"`
	MinClusterSize  int     `yaml:"min_cluster_size"`
}

func getUserHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return homeDir
}

func defaultConfigPath() string {
	return filepath.Join(getUserHomeDir(), ".config/colprofile/config.yaml")
}

// loadFileConfig reads path (or the default config path if path is empty)
// and overlays it onto opts. A missing file is not an error.
func loadFileConfig(path string, opts *profile.Options) {
	if path == "" {
		path = defaultConfigPath()
	}
	if !fileutil.FileExists(path) {
		return
	}

	bin, err := os.ReadFile(path)
	if err != nil {
		gologger.Error().Msgf("failed to read config file %v got %v", path, err)
		return
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(bin, &cfg); err != nil {
		gologger.Error().Msgf("failed to parse config file %v got %v", path, err)
		return
	}

	if cfg.MaxClusters > 0 {
		opts.MaxClusters = cfg.MaxClusters
	}
	if cfg.MinCoverage > 0 {
		opts.MinCoverage = cfg.MinCoverage
	}
	if cfg.EnumThreshold > 0 {
		opts.EnumThreshold = cfg.EnumThreshold
	}
	if cfg.DetectAnomalies != nil {
		opts.DetectAnomalies = *cfg.DetectAnomalies
	}
	if cfg.MergeThreshold > 0 {
		opts.MergeThreshold = cfg.MergeThreshold
	}
	if cfg.MinClusterSize > 0 {
		opts.MinClusterSize = cfg.MinClusterSize
	}
}
