package shader

// PBRUniformsSize is the byte size of the SceneUniforms block declared
// in PBRSource. The CPU-side mirror struct must marshal to exactly this
// many bytes.
const PBRUniformsSize = 192

// PBRSource is the WGSL program for the lit pass: a vertex stage that
// lifts mesh vertices into world and clip space, and a Cook-Torrance
// fragment stage driven by the scene uniform block. Both entry points
// live in one module and share the SceneUniforms declaration.
const PBRSource = `
struct SceneUniforms {
    model: mat4x4<f32>,
    view_proj: mat4x4<f32>,
    camera_pos: vec3<f32>,
    _pad0: f32,
    light_pos: vec3<f32>,
    _pad1: f32,
    albedo: vec3<f32>,
    metalness: f32,
    roughness: f32,
    _pad2: f32,
    _pad3: f32,
    _pad4: f32,
};

@group(0) @binding(0) var<uniform> scene: SceneUniforms;

struct VertexInput {
    @location(0) position: vec3<f32>,
    @location(1) normal: vec3<f32>,
    @location(2) uv: vec2<f32>,
};

struct VertexOutput {
    @builtin(position) clip_position: vec4<f32>,
    @location(0) world_position: vec3<f32>,
    @location(1) normal: vec3<f32>,
    @location(2) uv: vec2<f32>,
};

@vertex
fn vs_main(in: VertexInput) -> VertexOutput {
    var out: VertexOutput;
    let world = scene.model * vec4<f32>(in.position, 1.0);
    out.world_position = world.xyz;
    // The model transform is rigid (rotation only), so transforming the
    // normal by it directly is exact.
    out.normal = (scene.model * vec4<f32>(in.normal, 0.0)).xyz;
    out.uv = in.uv;
    out.clip_position = scene.view_proj * world;
    return out;
}

const PI: f32 = 3.14159265359;

fn distribution_ggx(n_dot_h: f32, roughness: f32) -> f32 {
    let a = roughness * roughness;
    let a2 = a * a;
    // Factored as cos2 * a2 + sin2 so the denominator keeps a2's precision
    // near the roughness floor instead of cancelling to zero at n_dot_h = 1.
    let n_dot_h2 = n_dot_h * n_dot_h;
    let denom = n_dot_h2 * a2 + (1.0 - n_dot_h2);
    return a2 / max(PI * denom * denom, 1e-30);
}

fn geometry_schlick_ggx(n_dot_x: f32, k: f32) -> f32 {
    return n_dot_x / (n_dot_x * (1.0 - k) + k);
}

fn geometry_smith(n_dot_v: f32, n_dot_l: f32, roughness: f32) -> f32 {
    let r = roughness + 1.0;
    let k = (r * r) / 8.0;
    return geometry_schlick_ggx(n_dot_v, k) * geometry_schlick_ggx(n_dot_l, k);
}

fn fresnel_schlick(v_dot_h: f32, f0: vec3<f32>) -> vec3<f32> {
    return f0 + (vec3<f32>(1.0) - f0) * pow(1.0 - v_dot_h, 5.0);
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    let n = normalize(in.normal);
    let v = normalize(scene.camera_pos - in.world_position);
    let l = normalize(scene.light_pos - in.world_position);
    let h = normalize(v + l);

    let n_dot_l = max(dot(n, l), 0.0);
    let n_dot_v = max(dot(n, v), 0.0);
    let n_dot_h = max(dot(n, h), 0.0);
    let v_dot_h = max(dot(v, h), 0.0);

    let f0 = mix(vec3<f32>(0.04), scene.albedo, scene.metalness);

    var direct = vec3<f32>(0.0);
    if (n_dot_l > 0.0) {
        let f = fresnel_schlick(v_dot_h, f0);
        let d = distribution_ggx(n_dot_h, scene.roughness);
        let g = geometry_smith(n_dot_v, n_dot_l, scene.roughness);

        let specular = (d * g * f) / (4.0 * n_dot_v * n_dot_l + 1e-4);
        let kd = (vec3<f32>(1.0) - f) * (1.0 - scene.metalness);
        let diffuse = kd * scene.albedo / PI;

        direct = (diffuse + specular) * n_dot_l;
    }

    let ambient = 0.03 * scene.albedo;
    let color = direct + ambient;

    return vec4<f32>(pow(color, vec3<f32>(1.0 / 2.2)), 1.0);
}
`

// NewPBRVertexShader creates the vertex stage Shader for the lit pass.
//
// Returns:
//   - Shader: the vertex shader backed by PBRSource
func NewPBRVertexShader() Shader {
	return NewShader("pbr_vertex", ShaderTypeVertex, PBRSource)
}

// NewPBRFragmentShader creates the fragment stage Shader for the lit pass.
//
// Returns:
//   - Shader: the fragment shader backed by PBRSource
func NewPBRFragmentShader() Shader {
	return NewShader("pbr_fragment", ShaderTypeFragment, PBRSource)
}
