package global

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

type rollingFileWriter struct {
	FileDirectory string
	FileName      string
}

func NewRollingFileWriter(fileDir string, fileName string) rollingFileWriter {
	absFileDir, err := filepath.Abs(fileDir)
	if err != nil {
		panic(err)
	}

	// Create dir for log files if they dont exist
	if err := os.MkdirAll(absFileDir, 0750); err != nil {
		panic(err)
	}

	return rollingFileWriter{
		FileDirectory: absFileDir,
		FileName:      fileName,
	}
}

const (
	mb         = 1000000
	maxLogSize = 2.5 * mb
	maxLogs    = 2
)

func (w rollingFileWriter) getFullFilePath() string {
	return filepath.Join(w.FileDirectory, fmt.Sprintf("%s.log", w.FileName))
}

// all log files ending in -<index>.log are archived logs, the live log has no index
func (w rollingFileWriter) getLogs(pattern string) ([]string, error) {
	logMatches, err := fs.Glob(os.DirFS(w.FileDirectory), pattern)
	if err != nil {
		return nil, err
	}

	return lo.Map(logMatches, func(log string, _ int) string {
		return filepath.Join(w.FileDirectory, log)
	}), nil
}

func (w rollingFileWriter) Write(b []byte) (n int, err error) {
	mainLogFile, err := os.OpenFile(w.getFullFilePath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return 0, err
	}

	stats, err := mainLogFile.Stat()
	if err != nil {
		mainLogFile.Close()
		return 0, err
	}

	// if the current log file is small enough, just append to it
	if stats.Size() < maxLogSize {
		defer mainLogFile.Close()
		return mainLogFile.Write(b)
	}

	// close since rotation renames the main file
	mainLogFile.Close()
	if err := w.rotate(); err != nil {
		return 0, err
	}

	// Append to a new log file
	mainLogFile, err = os.OpenFile(w.getFullFilePath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return 0, err
	}
	defer mainLogFile.Close()

	return mainLogFile.Write(b)
}

func (w rollingFileWriter) indexedLog(fileName string, index int) string {
	return filepath.Join(w.FileDirectory, fmt.Sprintf("%s-%d.log", fileName, index))
}

// rotate shifts every archived log up one index, drops any that would land
// past the cap and moves the live log to index 1.
func (w rollingFileWriter) rotate() error {
	logMatches, err := w.getLogs(w.FileName + "-*.log")
	if err != nil {
		return err
	}

	for _, log := range logMatches {
		index := getLogIndex(w.FileName, log)

		// get rid of messed up log files
		if index < 0 {
			if err := os.Remove(log); err != nil {
				return err
			}
			continue
		}

		// the live log still needs a slot under the cap
		if index+1 >= maxLogs {
			if err := os.Remove(log); err != nil {
				return err
			}
			continue
		}

		// Rename with a holding prefix first since the target index may still be taken
		// i.e. calc-1.log cannot become calc-2.log while an old calc-2.log exists
		if err := os.Rename(log, w.indexedLog("roll-"+w.FileName, index+1)); err != nil {
			return err
		}
	}

	heldLogs, err := w.getLogs("roll-" + w.FileName + "-*.log")
	if err != nil {
		return err
	}

	// Clean up holding prefixes
	for _, log := range heldLogs {
		newFileName, _ := strings.CutPrefix(filepath.Base(log), "roll-")

		if err := os.Rename(log, filepath.Join(filepath.Dir(log), newFileName)); err != nil {
			return err
		}
	}

	// Rename main log file
	return os.Rename(w.getFullFilePath(), w.indexedLog(w.FileName, 1))
}

// getLogIndex pulls the numeric suffix out of an archived log path.
// Anything unparseable comes back as -1 so the caller can clean it up.
func getLogIndex(baseFileName string, filePath string) int {
	fileName, _ := strings.CutSuffix(filepath.Base(filePath), ".log")
	indexStr, _ := strings.CutPrefix(fileName, baseFileName+"-")

	index, err := strconv.Atoi(indexStr)
	if err != nil {
		return -1
	}

	return index
}
