package selfies

import (
	"fmt"

	"github.com/turtacn/go-selfies/pkg/errors"
)

// padSymbol is appended to reach a requested encoding length; it is a
// semantic no-op for the decoder.
const padSymbol = "[nop]"

// SelfiesToEncoding converts a SELFIES string into an integer label sequence
// and a one-hot matrix under the given symbol-to-index vocabulary.  The
// string is padded with "[nop]" up to padToLen symbols; the vocabulary must
// then contain "[nop]".
func SelfiesToEncoding(selfies string, vocab map[string]int, padToLen int) ([]int, [][]int, error) {
	symbols, err := SplitSelfies(selfies)
	if err != nil {
		return nil, nil, err
	}
	for len(symbols) < padToLen {
		symbols = append(symbols, padSymbol)
	}

	labels := make([]int, len(symbols))
	for i, sym := range symbols {
		code, ok := vocab[sym]
		if !ok {
			return nil, nil, errors.InvalidParam("symbol missing from vocabulary").
				WithDetail("symbol=" + sym)
		}
		labels[i] = code
	}

	oneHot := make([][]int, len(labels))
	for i, code := range labels {
		row := make([]int, len(vocab))
		if code < 0 || code >= len(vocab) {
			return nil, nil, errors.InvalidParam("vocabulary index out of range").
				WithDetail(fmt.Sprintf("index=%d size=%d", code, len(vocab)))
		}
		row[code] = 1
		oneHot[i] = row
	}
	return labels, oneHot, nil
}

// EncodingToSelfies converts an integer label sequence back into a SELFIES
// string under the given index-to-symbol vocabulary.
func EncodingToSelfies(labels []int, vocab map[int]string) (string, error) {
	out := ""
	for _, code := range labels {
		sym, ok := vocab[code]
		if !ok {
			return "", errors.InvalidParam("label missing from vocabulary").
				WithDetail(fmt.Sprintf("label=%d", code))
		}
		out += sym
	}
	return out, nil
}

// OneHotToSelfies converts a one-hot matrix back into a SELFIES string.
func OneHotToSelfies(oneHot [][]int, vocab map[int]string) (string, error) {
	labels := make([]int, len(oneHot))
	for i, row := range oneHot {
		labels[i] = argmax(row)
	}
	return EncodingToSelfies(labels, vocab)
}

// BatchSelfiesToFlatHot converts a batch of SELFIES strings into flattened
// one-hot rows, each padded to padToLen symbols.
func BatchSelfiesToFlatHot(batch []string, vocab map[string]int, padToLen int) ([][]int, error) {
	out := make([][]int, len(batch))
	for i, s := range batch {
		_, oneHot, err := SelfiesToEncoding(s, vocab, padToLen)
		if err != nil {
			return nil, err
		}
		flat := make([]int, 0, len(oneHot)*len(vocab))
		for _, row := range oneHot {
			flat = append(flat, row...)
		}
		out[i] = flat
	}
	return out, nil
}

// BatchFlatHotToSelfies is the inverse of BatchSelfiesToFlatHot: each row is
// split into one-hot chunks of the vocabulary size and decoded back to
// symbols.
func BatchFlatHotToSelfies(flat [][]int, vocab map[int]string) ([]string, error) {
	if len(vocab) == 0 {
		return nil, errors.InvalidParam("vocabulary must not be empty")
	}
	out := make([]string, len(flat))
	for i, row := range flat {
		if len(row)%len(vocab) != 0 {
			return nil, errors.InvalidParam("flat one-hot length is not a multiple of the vocabulary size").
				WithDetail(fmt.Sprintf("row=%d length=%d vocab=%d", i, len(row), len(vocab)))
		}
		s := ""
		for j := 0; j < len(row); j += len(vocab) {
			sym, ok := vocab[argmax(row[j:j+len(vocab)])]
			if !ok {
				return nil, errors.InvalidParam("one-hot index missing from vocabulary")
			}
			s += sym
		}
		out[i] = s
	}
	return out, nil
}

func argmax(row []int) int {
	best := 0
	for i, v := range row {
		if v > row[best] {
			best = i
		}
	}
	return best
}

//Personal.AI order the ending
