package svqkdf

import "github.com/jpfluger/svaroq/svqerr"

// DeriveSubsetKeys runs sub-KDF B: enumerate every M-element combination of
// the N entropies (lexicographic over input order) and XOR each combination
// into a subset key. The result is an insertion-ordered, deduplicated set of
// keys whose count must equal C(N, M); a short count signals aliasing among
// the input entropies.
//
// Preconditions: N >= M >= 2 and M <= N, where N = len(entropies).
func DeriveSubsetKeys(entropies []Entropy, m int) ([]EncryptionKey, error) {
	n := len(entropies)
	if m < 2 || m > n {
		return nil, svqerr.QuestionsMustBeAtLeastAnswers(n, m)
	}

	want := Binomial(n, m)
	keys := make([]EncryptionKey, 0, want)
	seen := make(map[EncryptionKey]struct{}, want)

	combo := make([]int, m)
	for i := range combo {
		combo[i] = i
	}

	for {
		var key EncryptionKey
		for _, idx := range combo {
			key = key.XOR(entropies[idx])
		}
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			keys = append(keys, key)
		}

		if !nextCombination(combo, n) {
			break
		}
	}

	if len(keys) != want {
		return nil, svqerr.InvalidByteCount(want, len(keys))
	}
	return keys, nil
}

// nextCombination advances combo (a strictly increasing slice of indices
// into [0, n)) to the next lexicographic M-combination. Returns false once
// combo was already the last combination.
func nextCombination(combo []int, n int) bool {
	m := len(combo)
	i := m - 1
	for i >= 0 && combo[i] == n-m+i {
		i--
	}
	if i < 0 {
		return false
	}
	combo[i]++
	for j := i + 1; j < m; j++ {
		combo[j] = combo[j-1] + 1
	}
	return true
}

// Binomial computes C(n, m), the binomial coefficient. Exported so callers
// can validate a deserialized container's ciphertext count against the
// (N, M) they expect to read it with, before deriving any keys.
func Binomial(n, m int) int {
	if m < 0 || m > n {
		return 0
	}
	if m > n-m {
		m = n - m
	}
	result := 1
	for i := 0; i < m; i++ {
		result = result * (n - i) / (i + 1)
	}
	return result
}
