package cli

import (
	"github.com/advisorlabs/course-advisor/internal/catalog"
	"github.com/advisorlabs/course-advisor/internal/config"
	"github.com/advisorlabs/course-advisor/internal/dataset"
	"github.com/advisorlabs/course-advisor/internal/ml"
	"github.com/advisorlabs/course-advisor/pkg/logger"
)

func RunTrain(configPath string) {
	log := logger.Get()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", configPath).Msg("Failed to load config")
	}

	// The catalog does not feed the training rows; it is read here only to
	// fail fast when the serving-time dependency is missing.
	store, err := catalog.Load(cfg.Advisor.CatalogPath)
	if err != nil {
		log.Fatal().Err(err).
			Str("path", cfg.Advisor.CatalogPath).
			Msg("Failed to load course catalog")
	}
	log.Info().Int("courses", store.Len()).Msg("Course catalog available")

	synth := dataset.NewSynthesizerWithSets(
		cfg.Advisor.Training.Interests,
		cfg.Advisor.Training.CareerGoals,
		cfg.Advisor.Training.SkillLevels,
	)
	rows := synth.Generate(cfg.Advisor.TrainingRows, cfg.Advisor.TrainingSeed)
	log.Info().
		Int("rows", len(rows)).
		Int64("seed", cfg.Advisor.TrainingSeed).
		Msg("Synthetic training data generated")

	model, err := ml.Train(rows, cfg.Advisor.TrainingSeed, cfg.Advisor.MaxIterations)
	if err != nil {
		log.Fatal().Err(err).Msg("Training failed")
	}

	if err := model.Save(cfg.Advisor.ModelPath); err != nil {
		log.Fatal().Err(err).
			Str("path", cfg.Advisor.ModelPath).
			Msg("Failed to write model artifact")
	}

	log.Info().
		Str("path", cfg.Advisor.ModelPath).
		Bool("converged", model.Classifier.Converged).
		Int("iterations", model.Classifier.Iters).
		Msg("Model artifact written")
}
