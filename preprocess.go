package main

// preprocess module provides text normalization used for training and prediction
//
// Copyright (c) 2023 - Valentin Kuznetsov <vkuznet@gmail.com>
//

import "strings"

// english stopwords dropped during tokenization
var stopWords = map[string]struct{}{}

func init() {
	words := []string{
		"i", "me", "my", "myself", "we", "our", "ours", "ourselves",
		"you", "your", "yours", "yourself", "yourselves",
		"he", "him", "his", "himself", "she", "her", "hers", "herself",
		"it", "its", "itself", "they", "them", "their", "theirs", "themselves",
		"what", "which", "who", "whom", "this", "that", "these", "those",
		"am", "is", "are", "was", "were", "be", "been", "being",
		"have", "has", "had", "having", "do", "does", "did", "doing",
		"a", "an", "the", "and", "but", "if", "or", "because", "as",
		"until", "while", "of", "at", "by", "for", "with", "about",
		"against", "between", "into", "through", "during", "before",
		"after", "above", "below", "to", "from", "up", "down", "in",
		"out", "on", "off", "over", "under", "again", "further", "then",
		"once", "here", "there", "when", "where", "why", "how", "all",
		"any", "both", "each", "few", "more", "most", "other", "some",
		"such", "no", "nor", "not", "only", "own", "same", "so", "than",
		"too", "very", "s", "t", "can", "will", "just", "don", "should",
		"now", "d", "ll", "m", "o", "re", "ve", "y",
	}
	for _, w := range words {
		stopWords[w] = struct{}{}
	}
}

// tokenize normalizes given text and splits it into tokens:
// lowercase, strip everything but letters and spaces, drop stopwords.
// The same function serves both the training and the prediction path.
func tokenize(text string) []string {
	text = strings.ToLower(text)
	var sb strings.Builder
	for _, r := range text {
		if (r >= 'a' && r <= 'z') || r == ' ' {
			sb.WriteRune(r)
		} else {
			sb.WriteRune(' ')
		}
	}
	var tokens []string
	for _, w := range strings.Fields(sb.String()) {
		if _, ok := stopWords[w]; ok {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}
