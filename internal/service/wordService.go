package service

import (
	"github.com/ds124wfegd/word-blender/internal/entity"
	"github.com/sirupsen/logrus"
)

const DefaultWordsPerRound = 20

type wordService struct {
	pool     WordSampler
	perRound int
}

func NewWordService(pool WordSampler, perRound int) WordService {
	if perRound <= 0 {
		perRound = DefaultWordsPerRound
	}
	return &wordService{pool: pool, perRound: perRound}
}

func (s *wordService) RandomWords() (*entity.WordsResponse, error) {
	words, err := s.pool.Sample(s.perRound)
	if err != nil {
		logrus.WithError(err).Error("selecting random words from pool")
		return nil, err
	}

	logrus.WithField("count", len(words)).Debug("selected random words from pool")
	return &entity.WordsResponse{Words: words}, nil
}
