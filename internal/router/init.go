package router

import (
	"github.com/RizbiAhmmad/E-Learning-Website-Server/internal/application"
	"github.com/RizbiAhmmad/E-Learning-Website-Server/internal/container"
	"github.com/RizbiAhmmad/E-Learning-Website-Server/internal/infrastructure/mongodb"
	handlers "github.com/RizbiAhmmad/E-Learning-Website-Server/internal/interface/http"
	"github.com/RizbiAhmmad/E-Learning-Website-Server/internal/router/modules"
)

// InitModules builds every feature module from the container singletons
// and registers them with the router registry. Called once at startup.
func InitModules(r *Registry) {
	db := container.GetMongo()
	logger := container.GetLogger()
	jwt := container.GetJWT()

	users := mongodb.NewUserRepository(db)
	apps := mongodb.NewTeachApplicationRepository(db)
	classes := mongodb.NewClassRepository(db)

	userSvc := application.NewUserService(users, logger)
	appSvc := application.NewTeachApplicationService(apps, users, logger)
	classSvc := application.NewClassService(classes, logger)

	r.Add(
		modules.NewTokenModule(handlers.NewTokenHandler(jwt, userSvc, logger)),
		modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), jwt, users),
		modules.NewTeachApplicationModule(handlers.NewTeachApplicationHandler(appSvc, logger)),
		modules.NewClassModule(handlers.NewClassHandler(classSvc, logger)),
	)
}
