package internal

import "github.com/veandco/go-sdl2/sdl"

const defaultMaxCacheSize = 32

// TextureCache keeps recently drawn label and icon textures. The least
// recently used texture is destroyed when the cache is full.
type TextureCache struct {
	textures map[string]*sdl.Texture
	order    []string // least recently used first
	maxSize  int
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	return &TextureCache{
		textures: make(map[string]*sdl.Texture),
		order:    make([]string, 0, maxSize),
		maxSize:  max(1, maxSize),
	}
}

func (c *TextureCache) Get(key string) *sdl.Texture {
	texture, ok := c.textures[key]
	if ok {
		c.touch(key)
	}
	return texture
}

// GetOrCreate returns the cached texture for key, creating it with create on
// a miss. Failed creations are not cached.
func (c *TextureCache) GetOrCreate(key string, create func() (*sdl.Texture, error)) (*sdl.Texture, error) {
	if texture := c.Get(key); texture != nil {
		return texture, nil
	}
	texture, err := create()
	if err != nil {
		return nil, err
	}
	c.Set(key, texture)
	return texture, nil
}

func (c *TextureCache) Set(key string, texture *sdl.Texture) {
	if old, ok := c.textures[key]; ok {
		if old != texture {
			old.Destroy()
		}
		c.textures[key] = texture
		c.touch(key)
		return
	}
	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}
	c.textures[key] = texture
	c.order = append(c.order, key)
}

func (c *TextureCache) Len() int {
	return len(c.textures)
}

func (c *TextureCache) touch(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	if texture, ok := c.textures[oldest]; ok {
		texture.Destroy()
		delete(c.textures, oldest)
	}
}

func (c *TextureCache) Destroy() {
	for _, texture := range c.textures {
		texture.Destroy()
	}
	clear(c.textures)
	c.order = c.order[:0]
}
