package repository

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const (
	ExamFile        = "exam_data.json"
	AnswerKeyFile   = "exam_answers.json"
	UserAnswersFile = "user_answers.json"
)

// jsonFile is one pretty-printed JSON document at a fixed path.
type jsonFile struct {
	fs   afero.Fs
	path string
	log  *logrus.Entry
}

func newJSONFile(fs afero.Fs, dir, name string, log *logrus.Entry) (*jsonFile, error) {
	if dir == "" {
		dir = "."
	}
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create data directory %q", dir)
	}
	return &jsonFile{
		fs:   fs,
		path: filepath.Join(dir, name),
		log:  log.WithField("file", name),
	}, nil
}

// load returns os.ErrNotExist (unwrapped through errors.Is) when the file was
// never written.
func (f *jsonFile) load(v interface{}) error {
	data, err := afero.ReadFile(f.fs, f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			f.log.Debug("file not found")
			return os.ErrNotExist
		}
		f.log.WithError(err).Error("read failed")
		return errors.Wrapf(err, "failed to read %s", f.path)
	}
	if err := json.Unmarshal(data, v); err != nil {
		f.log.WithError(err).Error("decode failed")
		return errors.Wrapf(err, "failed to decode %s", f.path)
	}
	f.log.WithField("bytes", len(data)).Debug("file loaded")
	return nil
}

// persist overwrites the whole file.
func (f *jsonFile) persist(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		f.log.WithError(err).Error("encode failed")
		return errors.Wrapf(err, "failed to encode %s", f.path)
	}
	if err := afero.WriteFile(f.fs, f.path, data, 0o644); err != nil {
		f.log.WithError(err).Error("write failed")
		return errors.Wrapf(err, "failed to write %s", f.path)
	}
	f.log.WithField("bytes", len(data)).Info("file persisted")
	return nil
}
