package entity

type WordsResponse struct {
	Words []string `json:"words"`
}

type WordPair struct {
	Word1 string `json:"word1"`
	Word2 string `json:"word2"`
}
