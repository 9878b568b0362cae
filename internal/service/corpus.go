package service

import (
	"context"

	"ai-onboarding-be/internal/mapper"
	"ai-onboarding-be/internal/repository/unitofwork"
	"ai-onboarding-be/pkg/retrieval"
	"ai-onboarding-be/pkg/store"
)

// documentCorpus adapts the document repository to the retrieval pipeline.
// It always serves the latest version of every document; role filtering is
// the pipeline's job.
type documentCorpus struct {
	uowFactory unitofwork.RepositoryFactory
	mapper     *mapper.DocumentMapper
}

func NewDocumentCorpus(uowFactory unitofwork.RepositoryFactory) retrieval.Corpus {
	return &documentCorpus{
		uowFactory: uowFactory,
		mapper:     mapper.NewDocumentMapper(),
	}
}

func (c *documentCorpus) ListAll(ctx context.Context) ([]store.Document, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	docs, err := uow.DocumentRepository().FindAllLatest(ctx)
	if err != nil {
		return nil, err
	}
	return c.mapper.ToStoreDocuments(docs), nil
}
