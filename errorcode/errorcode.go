package errorcode

type Errorcode int

const (
	Success                     Errorcode = 0
	InvalidCommandLineArguments Errorcode = 1
	InvalidPolynomial           Errorcode = 2
	ProhibitedState             Errorcode = 3
	NotMaxLength                Errorcode = 4
	NotImplemented              Errorcode = 5
	SearchExhausted             Errorcode = 6
	FileIOError                 Errorcode = 7
	LogicError                  Errorcode = 8
)
