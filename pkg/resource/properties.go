package resource

import (
	"log"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultPropertiesPath = "configs/application.yml"

var (
	properties = viper.New()
	envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)
)

// init loads .env files and then application properties from YAML
func init() {
	loadDotEnv()

	value, ok := os.LookupEnv("PROPERTIES_FILE_PATH")
	if !ok {
		value = defaultPropertiesPath
	}
	Init(value)
}

// Init (re)loads the properties file. Relative paths that do not exist in the
// working directory are looked up in the parent directories, so packages under
// internal/ find the module's configs/ folder when run by go test.
func Init(path string) {
	resolved, err := Locate(path)
	if err != nil {
		log.Fatalf("Fail to read properties: %v", err)
	}

	v := viper.New()
	v.SetConfigFile(resolved)
	v.SetConfigType("yml")
	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("Fail to read properties: %v", err)
	}

	resolvedProps := make(map[string]any)
	parsePropertiesMap("", v.AllSettings(), resolvedProps)
	for key, value := range resolvedProps {
		v.Set(key, value)
	}
	properties = v
}

// loadDotEnv exports variables from .env files without overriding the real environment.
func loadDotEnv() {
	var files []string
	for _, name := range []string{".env", ".env.local"} {
		if path, err := Locate(name); err == nil {
			files = append(files, path)
		}
	}
	if len(files) == 0 {
		return
	}
	if err := godotenv.Load(files...); err != nil {
		log.Printf("Fail to load env files %v: %v", files, err)
	}
}

// Locate returns the first existing candidate for path, walking up from the
// working directory.
func Locate(path string) (string, error) {
	if filepath.IsAbs(path) {
		_, err := os.Stat(path)
		return path, err
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, path)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", &os.PathError{Op: "locate", Path: path, Err: os.ErrNotExist}
		}
		dir = parent
	}
}

// parsePropertiesMap flattens the YAML tree into dotted keys, resolving env placeholders
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariables(v)
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			result[fullKey] = v
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		case []any:
			result[fullKey] = v
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// resolveEnvVariables replaces every ${NAME:default} occurrence with the
// environment value, the default, or an empty string.
func resolveEnvVariables(value string) string {
	return envPattern.ReplaceAllStringFunc(value, func(match string) string {
		groups := envPattern.FindStringSubmatch(match)
		if envValue, exists := os.LookupEnv(groups[1]); exists {
			return envValue
		}
		return groups[2]
	})
}

// Set overrides a property at runtime.
func Set(key string, value any) {
	properties.Set(key, value)
}

func Get(key string) any {
	return properties.Get(key)
}

func GetString(key string) string {
	return properties.GetString(key)
}

// GetStringOrDefault returns the property or defaultValue when it is empty.
func GetStringOrDefault(key, defaultValue string) string {
	if value := properties.GetString(key); value != "" {
		return value
	}
	return defaultValue
}

func GetBool(key string) bool {
	return properties.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return properties.GetDuration(key)
}

func GetInt(key string) int {
	return properties.GetInt(key)
}

func GetFloat64(key string) float64 {
	return properties.GetFloat64(key)
}

func GetStringSlice(key string) []string {
	return properties.GetStringSlice(key)
}
