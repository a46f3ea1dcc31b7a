package fixing

import "errors"

// ErrScoreCount indicates a Scorer that returned the wrong number of scores.
var ErrScoreCount = errors.New("fixing: score count does not match solution size")
