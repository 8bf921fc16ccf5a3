package parser

import (
	"fmt"
	"io"
	"os"
)

// readInput reads the configured input source, enforcing the size limit.
func (cfg *parseConfig) readInput() ([]byte, error) {
	switch {
	case cfg.filePath != nil:
		info, err := os.Stat(*cfg.filePath)
		if err != nil {
			return nil, err
		}
		if info.Size() > cfg.maxFileSize {
			return nil, fmt.Errorf("parser: %s exceeds maximum file size (%d > %d bytes)",
				*cfg.filePath, info.Size(), cfg.maxFileSize)
		}
		return os.ReadFile(*cfg.filePath)
	case cfg.reader != nil:
		data, err := io.ReadAll(io.LimitReader(cfg.reader, cfg.maxFileSize+1))
		if err != nil {
			return nil, err
		}
		if int64(len(data)) > cfg.maxFileSize {
			return nil, fmt.Errorf("parser: input exceeds maximum file size (%d bytes)", cfg.maxFileSize)
		}
		return data, nil
	case cfg.bytes != nil:
		if int64(len(cfg.bytes)) > cfg.maxFileSize {
			return nil, fmt.Errorf("parser: input exceeds maximum file size (%d > %d bytes)",
				len(cfg.bytes), cfg.maxFileSize)
		}
		return cfg.bytes, nil
	}
	// applyOptions guarantees one source is set.
	return nil, errNoSource
}
