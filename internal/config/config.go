// Package config содержит общие для клиента и сервера настройки окружения
package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// DefaultEnvPaths - где ищется .env относительно места запуска
var DefaultEnvPaths = []string{".env", "../.env", "../../.env"}

// LoadDotEnv загружает первый найденный .env файл и возвращает его путь.
// Отсутствие файла ошибкой не считается.
func LoadDotEnv(paths ...string) (string, error) {
	if len(paths) == 0 {
		paths = DefaultEnvPaths
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return "", err
		}
		if err := godotenv.Load(p); err != nil {
			return p, err
		}
		return p, nil
	}

	return "", nil
}

// ValidEnv проверяет название окружения
func ValidEnv(env string) bool {
	switch env {
	case EnvLocal, EnvDev, EnvProd:
		return true
	}
	return false
}
