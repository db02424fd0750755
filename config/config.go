package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"bikeshare/communication"
	"bikeshare/loader"
	"bikeshare/utils"
)

const (
	DefaultConfigFilepath = "./config/config.yaml"

	configPathEnv = "CONFIG_PATH"
	logLevelEnv   = "LOG_LEVEL"
	rabbitURLEnv  = "RABBIT_URL"
	defaultLevel  = "info"
)

var ErrInvalidConfig = errors.New("invalid config")

// CityConfig files of one city. Paths are relative to AppConfig.DataDir
type CityConfig struct {
	TripsFile    string `yaml:"trips_file" validate:"required"`
	StationsFile string `yaml:"stations_file"`
}

// PublisherConfig contains the parameters to publish reports in RabbitMQ
type PublisherConfig struct {
	Enabled          bool                                 `yaml:"enabled"`
	RabbitURL        string                               `yaml:"rabbit_url" validate:"required_if=Enabled true"`
	Queue            communication.QueueDeclarationConfig `yaml:"queue"`
	PublishingConfig communication.PublishingConfig       `yaml:"publishing_config"`
}

type AppConfig struct {
	LogLevel  string                `yaml:"log_level" validate:"omitempty,oneof=trace debug info warn warning error fatal panic TRACE DEBUG INFO WARN WARNING ERROR FATAL PANIC"`
	DataDir   string                `yaml:"data_dir"`
	PageSize  int                   `yaml:"page_size" validate:"gte=0"`
	ChunkSize int                   `yaml:"chunk_size" validate:"gte=0"`
	Columns   loader.Columns        `yaml:"columns"`
	Cities    map[string]CityConfig `yaml:"cities" validate:"required,min=1,dive"`
	Publisher PublisherConfig       `yaml:"publisher"`
}

// LoadConfig reads the config file from CONFIG_PATH, or DefaultConfigFilepath when unset
func LoadConfig() (*AppConfig, error) {
	configFilepath := os.Getenv(configPathEnv)
	if configFilepath == "" {
		configFilepath = DefaultConfigFilepath
	}
	return LoadConfigFromFile(configFilepath)
}

func LoadConfigFromFile(configFilepath string) (*AppConfig, error) {
	configFile, err := utils.GetConfigFile(configFilepath)
	if err != nil {
		return nil, err
	}

	return ParseConfig(configFile)
}

// ParseConfig parses and validates a YAML config. LOG_LEVEL and RABBIT_URL override the file values
func ParseConfig(configFile []byte) (*AppConfig, error) {
	var appConfig AppConfig
	err := yaml.Unmarshal(configFile, &appConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if logLevel := os.Getenv(logLevelEnv); logLevel != "" {
		appConfig.LogLevel = logLevel
	}
	if appConfig.LogLevel == "" {
		appConfig.LogLevel = defaultLevel
	}

	if rabbitURL := os.Getenv(rabbitURLEnv); rabbitURL != "" {
		appConfig.Publisher.RabbitURL = rabbitURL
	}

	if err := validator.New().Struct(appConfig); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, err.Error())
	}

	if appConfig.Publisher.Enabled && appConfig.Publisher.Queue.Name == "" {
		return nil, fmt.Errorf("%w: publisher queue name is required", ErrInvalidConfig)
	}

	return &appConfig, nil
}

// GetCityNames returns the configured cities sorted by name
func (ac *AppConfig) GetCityNames() []string {
	cityNames := make([]string, 0, len(ac.Cities))
	for cityName := range ac.Cities {
		cityNames = append(cityNames, cityName)
	}
	sort.Strings(cityNames)
	return cityNames
}

// GetTripsFilepath returns the path of the trips file of city
func (ac *AppConfig) GetTripsFilepath(city string) (string, bool) {
	cityConfig, ok := ac.Cities[city]
	if !ok {
		return "", false
	}
	return ac.resolve(cityConfig.TripsFile), true
}

// GetStationsFilepath returns the path of the stations file of city, false when the city has none
func (ac *AppConfig) GetStationsFilepath(city string) (string, bool) {
	cityConfig, ok := ac.Cities[city]
	if !ok || cityConfig.StationsFile == "" {
		return "", false
	}
	return ac.resolve(cityConfig.StationsFile), true
}

func (ac *AppConfig) resolve(path string) string {
	if ac.DataDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(ac.DataDir, path)
}
