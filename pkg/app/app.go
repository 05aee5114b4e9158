// Package app 提供示例程序的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/showcase/pkg/animation"
	"github.com/decker502/showcase/pkg/config"
	"github.com/decker502/showcase/pkg/ecs"
	"github.com/decker502/showcase/pkg/embedded"
	"github.com/decker502/showcase/pkg/showcase"
	"github.com/decker502/showcase/pkg/storage"
	"github.com/decker502/showcase/pkg/systems"
	"github.com/decker502/showcase/pkg/utils"
)

// 示例程序的逻辑屏幕尺寸（竖屏手机比例）
const (
	ScreenWidth  = 480
	ScreenHeight = 800

	// mobileNavBarHeight 移动端底部系统栏高度，不允许覆盖系统栏的展示会避开这一区域
	mobileNavBarHeight = 48
)

// DefaultScript 内嵌的默认教学脚本
const DefaultScript = "data/tutorial.yaml"

// DefaultAppName gdata 应用名
const DefaultAppName = "showcase_demo"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Store 单次状态存储后端：gdata（默认）、sqlite 或 memory
	Store string
	// Reset 启动前清空所有单次状态
	Reset bool
	// Script 教学脚本路径，为空则使用内嵌的 data/tutorial.yaml
	Script string
	// AppName 存储使用的应用名，为空使用 DefaultAppName
	AppName string
}

// App 是示例程序的核心包装器，实现 ebiten.Game 接口
//
// 界面上是脚本定义的几个按钮，启动后依次显示独立展示和展示序列。
// 按 R 清空单次状态并重新开始，F11 切换全屏。
type App struct {
	script *config.TutorialScript
	store  storage.StatusStore
	closer io.Closer
	clock  animation.Clock
	face   text.Face

	displayer *showcase.Displayer
	host      *showcase.Host
	tutorial  *Tutorial

	entityManager      *ecs.EntityManager
	buttonSystem       *systems.ButtonSystem
	buttonRenderSystem *systems.ButtonRenderSystem

	events []utils.PressEvent
	clicks map[string]int
}

// NewApp 创建并初始化示例程序
//
// 使用内嵌脚本时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	script, err := loadScript(cfg.Script)
	if err != nil {
		return nil, err
	}

	appName := cfg.AppName
	if appName == "" {
		appName = DefaultAppName
	}
	store, closer, err := OpenStore(cfg.Store, appName)
	if err != nil {
		return nil, fmt.Errorf("状态存储打开失败: %w", err)
	}
	if cfg.Reset {
		log.Printf("[App] Resetting all single-use state")
		showcase.ResetAll(store)
	}

	a := &App{
		script: script,
		store:  store,
		closer: closer,
		clock:  animation.SystemClock{},
		face:   showcase.DefaultFace(),
		clicks: make(map[string]int),
	}
	if err := a.start(); err != nil {
		closer.Close()
		return nil, err
	}
	return a, nil
}

// loadScript 从文件或内嵌资源加载教学脚本
func loadScript(path string) (*config.TutorialScript, error) {
	if path != "" {
		script, err := config.LoadTutorialScript(path)
		if err != nil {
			return nil, fmt.Errorf("教学脚本加载失败: %w", err)
		}
		log.Printf("[App] Loaded tutorial script: %s", path)
		return script, nil
	}

	data, err := embedded.ReadFile(DefaultScript)
	if err != nil {
		return nil, fmt.Errorf("内嵌教学脚本读取失败: %w", err)
	}
	script, err := config.ParseTutorialScript(data, DefaultScript)
	if err != nil {
		return nil, fmt.Errorf("教学脚本加载失败: %w", err)
	}
	return script, nil
}

// start 创建宿主、元素和教学流程并开始显示
// 每次重新开始都使用新的 Displayer 和实体管理器，旧的展示随旧宿主一起丢弃
func (a *App) start() error {
	if a.host != nil {
		a.host.RemoveAll()
	}

	a.displayer = showcase.NewDisplayer()
	a.host = showcase.NewHost(showcase.HostOptions{
		Displayer: a.displayer,
		Store:     a.store,
		Clock:     a.clock,
		Face:      a.face,
	})
	a.host.SetSize(ScreenWidth, ScreenHeight)
	if utils.IsMobile() {
		a.host.SetChromeInsets(0, mobileNavBarHeight)
	}

	a.entityManager = ecs.NewEntityManager()
	a.buttonSystem = systems.NewButtonSystem(a.entityManager)
	a.buttonRenderSystem = systems.NewButtonRenderSystem(a.entityManager, a.face)

	tutorial, err := BuildTutorial(a.host, a.entityManager, a.script, a.onElementClick)
	if err != nil {
		return fmt.Errorf("教学流程创建失败: %w", err)
	}
	a.tutorial = tutorial
	a.tutorial.Start()
	return nil
}

// Restart 清空单次状态并重新开始教学流程
func (a *App) Restart() error {
	log.Printf("[App] Restarting tutorial")
	showcase.ResetAll(a.store)
	return a.start()
}

func (a *App) onElementClick(name string) {
	a.clicks[name]++
	log.Printf("[App] Element %q clicked (%d)", name, a.clicks[name])
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := a.Restart(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	a.events = utils.AppendJustPressed(a.events[:0])
	for _, ev := range a.events {
		a.HandlePress(ev.Pos)
	}

	a.buttonSystem.Update(utils.GetPointerPosition(), a.clock.Now())
	a.host.Update()
	return nil
}

// HandlePress 分发一次按下事件
// 展示遮罩优先；遮罩未消费（没有展示或点中了可点击的目标）时交给界面按钮
func (a *App) HandlePress(p image.Point) {
	if a.host.HandlePress(p) {
		return
	}
	a.buttonSystem.HandlePress(p, a.clock.Now())
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 0xFA, G: 0xFA, B: 0xFA, A: 0xFF})
	a.buttonRenderSystem.Draw(screen)

	op := &text.DrawOptions{}
	op.GeoM.Translate(16, ScreenHeight-24)
	op.ColorScale.ScaleWithColor(color.NRGBA{R: 0x75, G: 0x75, B: 0x75, A: 0xFF})
	text.Draw(screen, "R: restart tutorial", a.face, op)

	a.host.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.host.SetSize(ScreenWidth, ScreenHeight)
	return ScreenWidth, ScreenHeight
}

// Host 返回展示宿主
func (a *App) Host() *showcase.Host {
	return a.host
}

// Tutorial 返回当前教学流程
func (a *App) Tutorial() *Tutorial {
	return a.tutorial
}

// Clicks 返回元素被点击的次数
func (a *App) Clicks(name string) int {
	return a.clicks[name]
}

// Close 关闭状态存储
// 用于程序退出时释放 SQLite 连接
func (a *App) Close() error {
	return a.closer.Close()
}
