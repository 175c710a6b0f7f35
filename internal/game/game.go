package game

import (
	"fmt"

	"retrofps/internal/components"
	"retrofps/internal/config"
	"retrofps/internal/engine"
	"retrofps/internal/input"
	"retrofps/internal/logger"
	"retrofps/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

type Game struct {
	Config    *config.Config
	World     *world.World
	Renderer  *world.Renderer
	Player    *engine.GameObject
	Input     *input.Mapper
	DebugMode bool

	hud hud
}

// New loads the scene and spawns the player. It does not touch the window,
// so it can run before Run opens one.
func New(cfg *config.Config) (*Game, error) {
	bindings, err := buildBindings(cfg.Input)
	if err != nil {
		return nil, err
	}
	mapper := input.NewMapper(bindings)
	mapper.LookSensitivity = cfg.Input.LookSensitivity
	mapper.InvertY = cfg.Input.InvertY

	g := &Game{
		Config:   cfg,
		World:    world.New(),
		Renderer: world.NewRenderer(),
		Input:    mapper,
	}
	if err := g.World.LoadScene(cfg.Scene); err != nil {
		return nil, err
	}
	g.createPlayer()
	g.watchDoors()
	g.World.Start()
	return g, nil
}

func buildBindings(cfg config.InputConfig) (input.Bindings, error) {
	if len(cfg.Bindings) == 0 {
		return input.DefaultBindings(), nil
	}
	b, err := input.ParseBindings(cfg.Bindings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalid, err)
	}
	return b, nil
}

func (g *Game) createPlayer() {
	p := g.Config.Player
	g.Player = engine.NewGameObject("Player")
	g.Player.Tags = []string{"player"}
	g.Player.Transform.Position = rl.Vector3{X: p.Spawn[0], Y: p.Spawn[1], Z: p.Spawn[2]}
	g.Player.Transform.Rotation.Y = p.Yaw

	pc := components.NewPlayerController(g.Input)
	pc.Yaw = p.Yaw
	pc.MoveSpeed = p.MoveSpeed
	pc.SprintMultiplier = p.SprintMultiplier
	pc.Gravity = p.Gravity
	pc.JumpStrength = p.JumpStrength
	pc.EyeHeight = p.EyeHeight
	g.Player.AddComponent(pc)

	g.Player.AddComponent(components.NewCamera())

	// Body collider; feet at Position. Pawn only so it never blocks traces.
	body := components.NewBoxCollider(rl.Vector3{X: 0.6, Y: 1.8, Z: 0.6})
	body.Offset = rl.Vector3{Y: 0.9}
	body.Channels = engine.ChannelPawn
	g.Player.AddComponent(body)

	// Must follow the controller: it corrects the position the controller wrote.
	g.Player.AddComponent(&world.PlayerCollision{})

	interactor := components.NewInteractor(g.Input)
	interactor.MaxRange = p.InteractRange
	interactor.OnInteracted.AddListener(func(target *engine.GameObject) {
		g.hud.flash(fmt.Sprintf("Used %s", target.Name))
	})
	g.Player.AddComponent(interactor)

	g.World.Scene.AddGameObject(g.Player)
}

func (g *Game) watchDoors() {
	for _, d := range g.World.Doors() {
		name := d.GetGameObject().Name
		d.OnStateChanged.AddListener(func(s components.DoorState) {
			logger.Log.Info("Door changed", zap.String("door", name), zap.Stringer("state", s))
		})
	}
}

func (g *Game) Run() {
	w := g.Config.Window
	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(w.Width, w.Height, w.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(w.TargetFPS)
	rl.DisableCursor()
	initHUDStyle()

	logger.Log.Info("Game started", zap.Int32("width", w.Width), zap.Int32("height", w.Height))

	for !rl.WindowShouldClose() {
		g.Update(rl.GetFrameTime())
		g.Draw()
	}
}

// Update runs one frame: input, then the scene passes.
func (g *Game) Update(deltaTime float32) {
	g.Input.Poll(input.RaylibSource{})
	g.World.Update(deltaTime)
	g.hud.update(deltaTime)

	// Toggle debug mode
	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
		g.Renderer.Wireframes = g.DebugMode
	}
}

func (g *Game) Draw() {
	cam := engine.GetComponent[*components.Camera](g.Player)
	if cam == nil {
		return
	}

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	rl.BeginMode3D(cam.GetRaylibCamera())
	g.Renderer.Draw(g.World.Scene.GameObjects)
	rl.EndMode3D()

	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) DrawUI() {
	interactor := engine.GetComponent[*components.Interactor](g.Player)
	var target *engine.GameObject
	if interactor != nil {
		target = interactor.Target()
	}
	g.hud.draw(target, g.DebugMode)
}
