package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// MappingFile - относительный путь к маппингу индекса hotels
const MappingFile = "migrations/elasticsearch_mapping.json"

// ReadMapping ищет файл маппинга в рабочей директории, уровнем выше и рядом с бинарником.
// Возвращает содержимое и найденный путь.
func ReadMapping() ([]byte, string, error) {
	paths := []string{
		MappingFile,
		filepath.Join("..", MappingFile),
		filepath.Join(filepath.Dir(os.Args[0]), "..", MappingFile),
	}

	for _, path := range paths {
		if data, err := os.ReadFile(path); err == nil {
			return data, path, nil
		}
	}
	return nil, "", fmt.Errorf("mapping file %s not found", MappingFile)
}
