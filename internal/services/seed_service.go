package services

import (
	"context"

	"gorm.io/gorm"

	"taskflow.com/taskflow/internal/constants"
	model "taskflow.com/taskflow/internal/models"
	repository "taskflow.com/taskflow/internal/repositories"
)

const (
	MessageAlreadySeeded = "Already seeded"
	MessageSeeded        = "Seeded successfully"
)

type seedTask struct {
	title       string
	description string
	status      constants.TaskStatus
	priority    constants.TaskPriority
}

type seedProject struct {
	name        string
	description string
	color       string
	tasks       []seedTask
}

var demoProjects = []seedProject{
	{
		name:        "Website Redesign",
		description: "Redesign the company website with modern UI",
		color:       "#6366f1",
		tasks: []seedTask{
			{"Create wireframes", "Design wireframes for all pages", constants.StatusDone, constants.PriorityHigh},
			{"Design UI mockups", "Create high-fidelity Figma mockups", constants.StatusInProgress, constants.PriorityHigh},
			{"Implement homepage", "Code the responsive homepage", constants.StatusTodo, constants.PriorityMedium},
			{"SEO optimisation", "Add meta tags and structured data", constants.StatusTodo, constants.PriorityLow},
		},
	},
	{
		name:        "Mobile App",
		description: "Build a cross-platform mobile application",
		color:       "#f59e0b",
		tasks: []seedTask{
			{"Setup React Native", "Initialise the project with Expo", constants.StatusDone, constants.PriorityHigh},
			{"User authentication", "Implement login / signup flow", constants.StatusInProgress, constants.PriorityHigh},
			{"Push notifications", "Integrate Firebase Cloud Messaging", constants.StatusTodo, constants.PriorityLow},
		},
	},
	{
		name:        "API Development",
		description: "Develop RESTful microservices",
		color:       "#10b981",
		tasks: []seedTask{
			{"Database schema", "Design normalised SQL schema", constants.StatusDone, constants.PriorityHigh},
			{"CRUD endpoints", "Implement all resource endpoints", constants.StatusInProgress, constants.PriorityHigh},
			{"API documentation", "Write OpenAPI / Swagger docs", constants.StatusTodo, constants.PriorityMedium},
		},
	},
}

type SeedService struct {
	db       *gorm.DB
	projects *repository.ProjectRepository
	tasks    *repository.TaskRepository
}

func NewSeedService(
	db *gorm.DB,
	projects *repository.ProjectRepository,
	tasks *repository.TaskRepository,
) *SeedService {
	return &SeedService{
		db:       db,
		projects: projects,
		tasks:    tasks,
	}
}

// Seed inserts the demo projects and their tasks unless any project exists.
// It returns the message to report back and whether rows were written.
func (s *SeedService) Seed(ctx context.Context) (string, bool, error) {
	seeded := false
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		projectRepo := s.projects.WithTx(tx)

		count, err := projectRepo.Count(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		projects := make([]model.Project, 0, len(demoProjects))
		for _, sp := range demoProjects {
			description := sp.description
			projects = append(projects, model.Project{
				Name:        sp.name,
				Description: &description,
				Color:       sp.color,
			})
		}
		// Task rows need the project ids assigned by this insert.
		if err := projectRepo.CreateMany(ctx, projects); err != nil {
			return err
		}

		var tasks []model.Task
		for i, sp := range demoProjects {
			for _, st := range sp.tasks {
				description := st.description
				tasks = append(tasks, model.Task{
					Title:       st.title,
					Description: &description,
					Status:      st.status,
					Priority:    st.priority,
					ProjectID:   projects[i].ID,
				})
			}
		}
		if err := s.tasks.WithTx(tx).CreateMany(ctx, tasks); err != nil {
			return err
		}

		seeded = true
		return nil
	})
	if err != nil {
		return "", false, err
	}

	if !seeded {
		return MessageAlreadySeeded, false, nil
	}
	return MessageSeeded, true, nil
}
