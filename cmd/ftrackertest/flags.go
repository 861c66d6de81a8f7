package ftrackertest

import "flag"

var (
	flagBinaryPath string // путь до бинарного файла ftracker
)

func init() {
	flag.StringVar(&flagBinaryPath, "binary-path", "", "path to ftracker binary")
}
