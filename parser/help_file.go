package parser

import (
	"io/fs"
	"os"
	path2 "path"
)

type FileInfo struct {
	fs.FileInfo
	path string
}

func (f FileInfo) Path() string {
	return f.path
}

// IsExist checks whether a file or directory exists.
// It returns false when the file or directory does not exist.
func IsExist(f string) bool {
	_, err := os.Stat(f)
	return err == nil || os.IsExist(err)
}

// LoadFiles 读取目录中的所有文件包括子目录的文件, 按扩展名过滤
func LoadFiles(path string, ext ...string) ([]FileInfo, error) {
	got := make([]FileInfo, 0)

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			t, err := LoadFiles(path+"/"+entry.Name(), ext...)
			if err != nil {
				return nil, err
			}
			got = append(got, t...)
		} else if InArrString(path2.Ext(entry.Name()), ext) {
			info, err := entry.Info()
			if err != nil {
				return nil, err
			}
			got = append(got, FileInfo{
				FileInfo: info,
				path:     path + "/" + entry.Name(),
			})
		}
	}

	return got, nil
}
