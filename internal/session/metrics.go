package session

import "time"

// Standard word length used for WPM calculation.
const standardWordLength = 5.0

// Metrics holds the derived performance numbers for a snapshot.
type Metrics struct {
	GrossWPM float64
	NetWPM   float64
	Accuracy float64
}

// computeMetrics derives gross WPM, net WPM, and accuracy from the keystroke
// log and elapsed time. Everything is recomputed from the log on each call so
// the numbers can never drift from the authoritative record.
func computeMetrics(log []LogEntry, elapsed time.Duration) Metrics {
	correct := 0
	incorrect := 0
	for _, e := range log {
		switch e.Result {
		case StateCorrect:
			correct++
		case StateIncorrect:
			incorrect++
		}
	}

	m := Metrics{Accuracy: 100}
	judged := correct + incorrect
	if judged > 0 {
		m.Accuracy = float64(correct) / float64(judged) * 100
	}
	if elapsed < time.Second {
		// Too little signal for a meaningful rate.
		return m
	}
	minutes := elapsed.Minutes()
	m.GrossWPM = float64(judged) / standardWordLength / minutes
	m.NetWPM = (float64(correct)/standardWordLength - float64(incorrect)) / minutes
	if m.NetWPM < 0 {
		m.NetWPM = 0
	}
	return m
}
