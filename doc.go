/*
Package seamcarver is a content aware image resize library, which can shrink the source image
both vertically and horizontally by eliminating the less important parts of the image.

The importance of a pixel is given by its dual-gradient energy. The lowest energy connected path
of pixels crossing the image (a seam) is found by dynamic programming and removed,
reducing the image width or height by one pixel at a time.

The package provides a command line interface, supporting various flags for different types of rescaling operations.
To check the supported commands type:

	$ seamcarver --help

The Carver type exposes the low level operations:

	c, err := seamcarver.NewCarver(img)
	if err != nil {
		log.Fatal(err)
	}
	for c.Width() > 100 {
		if err := c.RemoveVerticalSeam(c.FindVerticalSeam()); err != nil {
			log.Fatal(err)
		}
	}
	res := c.Image()

In case you wish to resize an encoded image in one go, use the Processor:

	p := &seamcarver.Processor{
		NewWidth:  100,
		NewHeight: 80,
	}

	if err := p.Process(in, out); err != nil {
		fmt.Printf("Error rescaling image: %s", err.Error())
	}
*/
package seamcarver
