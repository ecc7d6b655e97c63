package arcade

// wordDropWords is the pool of GIS and tech terms the Word Drop spawner
// draws from.
var wordDropWords = []string{
	"raster", "vector", "datum", "lidar", "geojson", "shapefile", "projection",
	"topology", "spatial", "buffer", "overlay", "interpolate", "reclassify",
	"georeferencing", "digitize", "attribute", "metadata", "coordinate", "elevation",
	"contour", "watershed", "slope", "aspect", "viewshed", "hillshade", "mosaic",
	"clip", "dissolve", "merge", "union", "intersect", "erase", "append", "relate",
	"domain", "subtype", "feature", "basemap", "tile", "portal", "geocode", "centroid",
	"extent", "symbology", "legend", "graticule", "parallels", "meridian", "equator",
	"latitude", "longitude", "azimuth", "bearing", "cadastral", "parcel", "cadastre",
	"geostatistics", "kriging", "thiessen", "voronoi", "tin", "dem", "dsm", "dtm",
	"orthorectify", "photogrammetry", "parallax", "stereo", "aerial", "drone", "uav",
	"multispectral", "hyperspectral", "infrared", "pointcloud", "voxel",
	"tropomi", "sentinel", "landsat", "modis", "ndvi", "ndwi", "savi", "evi",
	"classification", "spectral", "temporal", "composite", "calibration",
	"radiance", "reflectance", "emissivity", "albedo", "backscatter", "coherence",
	"interferometry", "sar", "insar", "phenology", "biomass", "canopy", "impervious",
	"python", "csharp", "sql", "arcpy", "pandas", "numpy", "geopandas", "shapely",
	"fiona", "rasterio", "gdal", "ogr", "pyproj", "folium", "leaflet", "mapbox",
	"geotiff", "netcdf", "hdf", "csv", "json", "xml", "api", "rest", "graphql",
	"boolean", "integer", "string", "query", "schema", "index", "function", "class",
	"loop", "array", "dictionary", "module", "variable", "parameter", "algorithm",
	"azure", "gemini", "neural", "model", "token", "prompt", "agent", "classify",
	"embedding", "inference", "training", "pipeline", "llm", "ocr", "grounding",
	"fiber", "network", "rfp", "bore", "telecom", "cable", "conduit", "splice",
	"splitter", "manhole", "handhole", "strand", "attachment", "pole", "duct",
	"route", "span", "riser", "trench", "directional", "pullbox", "closure",
	"olsson", "omaha", "lincoln", "nebraska", "arcgis", "qgis", "autocad", "envi",
	"tableau", "github", "smartsheet", "postgresql", "sqlserver",
}
