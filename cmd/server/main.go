package main

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/lib/pq"

	"github.com/RenHec/HRS/internal/application"
	"github.com/RenHec/HRS/internal/config"
	"github.com/RenHec/HRS/internal/email"
	"github.com/RenHec/HRS/internal/infrastructure/repository"
	handlers "github.com/RenHec/HRS/internal/interfaces/http"
)

func main() {
	log := config.GetLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("error al cargar la configuración")
	}

	db, err := sql.Open("postgres", cfg.GetDBConnString())
	if err != nil {
		log.WithError(err).Fatal("error al abrir la conexión a la base de datos")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.WithError(err).Fatal("error al conectar con la base de datos")
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
		ExposeHeaders:    "Content-Length",
		MaxAge:           86400,
	}))

	// Email Client
	var emailClient *email.Client
	if cfg.EmailHabilitado() {
		emailClient, err = email.NewClient(
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPUser,
			cfg.SMTPPassword,
			cfg.SMTPFromName,
			cfg.SMTPFromEmail,
		)
		if err != nil {
			log.WithError(err).Warn("cliente de email no disponible, se continúa sin correos")
			emailClient = nil
		}
	}

	// Catálogos
	catalogoRepo := repository.NewCatalogoRepository(db)
	catalogoService := application.NewCatalogoService(catalogoRepo)
	catalogoHandler := handlers.NewCatalogoHandler(catalogoService)

	// Clientes
	clienteRepo := repository.NewClienteRepository(db)
	clienteService := application.NewClienteService(clienteRepo)
	clienteHandler := handlers.NewClienteHandler(clienteService)

	// Habitaciones y disponibilidad
	habitacionRepo := repository.NewHabitacionRepository(db)
	disponibilidadService := application.NewDisponibilidadService(habitacionRepo, catalogoRepo)
	habitacionHandler := handlers.NewHabitacionHandler(disponibilidadService)

	// Reservaciones
	reservacionRepo := repository.NewReservacionRepository(db)
	reservacionService := application.NewReservacionService(reservacionRepo, clienteRepo, emailClient, log)
	reservacionHandler := handlers.NewReservacionHandler(reservacionService)

	// Bitácora
	bitacoraRepo := repository.NewBitacoraRepository(db)
	bitacoraService := application.NewBitacoraService(bitacoraRepo)
	bitacoraHandler := handlers.NewBitacoraHandler(bitacoraService)

	api := app.Group("/api")

	// Rutas de habitaciones
	habitaciones := api.Group("/habitaciones")
	habitaciones.Post("/disponibles", habitacionHandler.BuscarDisponibles)
	habitaciones.Post("/puede-reservar", habitacionHandler.PuedeReservar)
	habitaciones.Get("/:id/promociones", habitacionHandler.Promociones)
	habitaciones.Get("/:id/precios", habitacionHandler.Precios)

	// Rutas de reservaciones
	reservaciones := api.Group("/reservaciones")
	reservaciones.Get("/", reservacionHandler.Listar)
	reservaciones.Post("/", reservacionHandler.Crear)
	reservaciones.Get("/pendientes", reservacionHandler.Pendientes)
	reservaciones.Get("/confirmadas", reservacionHandler.Confirmadas)
	reservaciones.Get("/calendario", reservacionHandler.Calendario)
	reservaciones.Get("/:id", reservacionHandler.GetByID)
	reservaciones.Get("/:id/detalles", reservacionHandler.Detalles)
	reservaciones.Put("/:id", reservacionHandler.Actualizar)
	reservaciones.Post("/:id/cancelar", reservacionHandler.Cancelar)

	// Rutas de bitácora
	detalles := api.Group("/detalles")
	detalles.Get("/:id/bitacora", bitacoraHandler.GetPorDetalle)
	bitacoras := api.Group("/bitacoras")
	bitacoras.Put("/:id", bitacoraHandler.CorregirFechas)

	// Rutas de clientes
	clientes := api.Group("/clientes")
	clientes.Get("/", clienteHandler.GetAll)
	clientes.Get("/buscar", clienteHandler.BuscarPorNit)
	clientes.Post("/", clienteHandler.Resolver)
	clientes.Put("/:id", clienteHandler.Actualizar)
	clientes.Delete("/:id", clienteHandler.Eliminar)

	// Rutas de catálogos
	catalogos := api.Group("/catalogos")
	catalogos.Get("/status", catalogoHandler.GetStatus)
	catalogos.Get("/movimientos", catalogoHandler.GetMovimientos)
	catalogos.Get("/monedas", catalogoHandler.GetMonedas)
	catalogos.Get("/municipios", catalogoHandler.GetMunicipios)

	log.WithField("puerto", cfg.ServerPort).Info("servidor iniciando")
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.WithError(err).Fatal("error al iniciar el servidor")
	}
}
