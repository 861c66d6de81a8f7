package ftrackertest

import (
	"github.com/stretchr/testify/suite"
)

var expectedLines = []string{
	"Тип тренировки: Swimming; Длительность: 1 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
	"Тип тренировки: Running; Длительность: 1 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 797.805.",
	"Тип тренировки: SportsWalking; Длительность: 1 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 157.500.",
}

// FtrackerSuite проверяет собранный бинарный файл ftracker
type FtrackerSuite struct {
	suite.Suite
}

func (suite *FtrackerSuite) SetupSuite() {
	if flagBinaryPath == "" {
		suite.T().Skip("-binary-path не задан, пропускаю приёмочные тесты")
	}
}

func (suite *FtrackerSuite) TestSamplePackages() {
	e := New(suite.T())
	res := RunFtracker(e)

	e.Equal(0, res.ExitCode, "Программа должна завершаться с кодом 0")
	e.Equal(expectedLines, res.Lines(), "Вывод программы не совпадает с ожидаемым")
	e.Empty(res.Stderr, "При уровне логирования info программа ничего не пишет в stderr")
}

func (suite *FtrackerSuite) TestDebugLogging() {
	e := New(suite.T())
	res := RunFtracker(e, "-log-level=debug")

	e.Equal(0, res.ExitCode)
	e.Equal(expectedLines, res.Lines(), "Логи не должны попадать в stdout")
	e.Contains(res.Stderr, "training computed")
	e.Contains(res.Stderr, "packages processed")
}

func (suite *FtrackerSuite) TestBadLogLevel() {
	e := New(suite.T())
	res := RunFtracker(e, "-log-level=loud")

	e.Equal(2, res.ExitCode, "При неверном уровне логирования программа завершается с кодом 2")
	e.Empty(res.Stdout)
	e.Contains(res.Stderr, "loud")
}
