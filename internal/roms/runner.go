package roms

import (
	"fmt"

	"github.com/retroenv/bytepusher/internal/convert"
	"github.com/retroenv/bytepusher/internal/rom"
)

// Palette indexes used by the runner screens.
const (
	ColorSky      = 215
	ColorGround   = 108
	ColorPlayer   = 36
	ColorObstacle = 72
)

const (
	groundY      = 200
	playerX      = 40
	playerY      = 170
	spriteSize   = 20
	obstacleSize = 20

	obstacleStart = 220
	obstacleSpeed = 20
)

// runner sprites, '#' pixels are drawn in the player color.
var runnerSprites = [2][spriteSize]string{
	{
		"........#####.......",
		".......#######......",
		".......########.....",
		".......########.....",
		".......######.......",
		".......##..##.......",
		".....##########.....",
		"....############....",
		"....############....",
		"....###########.....",
		"....##########......",
		".....########.......",
		"......######........",
		"......##..##........",
		"......##..##........",
		"......##..##........",
		"......##..##........",
		"......##..##........",
		"......##...##.......",
		"......##............",
	},
	{
		"........#####.......",
		".......#######......",
		".......########.....",
		".......########.....",
		".......######.......",
		".......##..##.......",
		".....##########.....",
		"....############....",
		"....############....",
		"....###########.....",
		"....##########......",
		".....########.......",
		"......######........",
		"......##..##........",
		"......##..##........",
		"......##..##........",
		".......##.##........",
		"..........##........",
		"......##............",
		"......##............",
	},
}

// RunnerFrame returns the screen data of one frame of the runner animation. The sprite
// alternates between the two running poses and the obstacle moves left by a fixed
// distance per frame, parts outside of the screen are clipped.
func RunnerFrame(frame int) []byte {
	sprite := &runnerSprites[frame%len(runnerSprites)]
	obstacleX := obstacleStart - frame*obstacleSpeed
	data := make([]byte, 0, convert.FrameSize)

	for y := range convert.FrameHeight {
		for x := range convert.FrameWidth {
			color := byte(ColorSky)
			switch {
			case y == groundY:
				color = ColorPlayer
			case y > groundY:
				color = ColorGround
			}

			if x >= playerX && x < playerX+spriteSize &&
				y >= playerY && y < playerY+spriteSize &&
				sprite[y-playerY][x-playerX] == '#' {
				color = ColorPlayer
			}

			if x >= obstacleX && x < obstacleX+obstacleSize &&
				y >= groundY-obstacleSize && y < groundY {
				color = ColorObstacle
			}

			data = append(data, color)
		}
	}
	return data
}

// BuildRunner builds the animated runner demo with frameCount screens, each one shown
// for syncsPerFrame frames.
func BuildRunner(b *rom.Builder, layout Layout, frameCount, syncsPerFrame int) error {
	if frameCount < 1 {
		return fmt.Errorf("%w: frame count %d", ErrNoFrames, frameCount)
	}

	if err := setup(b, layout, true); err != nil {
		return err
	}
	if err := screenLoop(b, layout, frameCount, syncsPerFrame, false); err != nil {
		return err
	}
	if err := silence(b, layout); err != nil {
		return err
	}

	data := make([]byte, 0, frameCount*convert.FrameSize)
	for frame := range frameCount {
		data = append(data, RunnerFrame(frame)...)
	}
	return frames(b, layout, data)
}
